package handlers

import (
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const refreshTokenCookie = "refreshToken"

type TokenHandler struct {
	authService *services.AuthService
}

func NewTokenHandler(authService *services.AuthService) *TokenHandler {
	return &TokenHandler{authService: authService}
}

// GetToken exchanges credentials for an access token. Wrong credentials
// are a 200 with IsAuthenticated=false; the message tells the client
// what happened.
func (h *TokenHandler) GetToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	result, err := h.authService.GetToken(&req)
	if err != nil {
		return err
	}

	if result.RefreshToken != "" {
		h.setRefreshTokenCookie(c, result.RefreshToken, result.RefreshTokenExpiration)
	}
	return c.JSON(result)
}

// Refresh rotates the refresh token carried in the cookie.
func (h *TokenHandler) Refresh(c *fiber.Ctx) error {
	token := c.Cookies(refreshTokenCookie)
	if token == "" {
		return apperr.Validation("Refresh token cookie is required")
	}

	result, err := h.authService.RefreshToken(token)
	if err != nil {
		return err
	}

	if result.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	h.setRefreshTokenCookie(c, result.RefreshToken, result.RefreshTokenExpiration)
	return c.JSON(result)
}

// Revoke accepts the token in the body, falling back to the cookie.
func (h *TokenHandler) Revoke(c *fiber.Ctx) error {
	var req dto.RevokeTokenRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperr.Validation("Invalid request body")
	}

	token := req.Token
	if token == "" {
		token = c.Cookies(refreshTokenCookie)
	}
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Token is required."})
	}

	revoked, err := h.authService.RevokeToken(token)
	if err != nil {
		return err
	}
	if !revoked {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "Token not found."})
	}
	return c.JSON(dto.MessageResponse{Message: "Token revoked"})
}

// ListRefreshTokens exposes a user's full token history, tombstones
// included.
func (h *TokenHandler) ListRefreshTokens(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid user id: %s", c.Params("id"))
	}

	user, err := h.authService.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("User with id %s not found.", id)
	}
	return c.JSON(user.RefreshTokens)
}

func (h *TokenHandler) setRefreshTokenCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshTokenCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
