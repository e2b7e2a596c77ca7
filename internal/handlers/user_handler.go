package handlers

import (
	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	message, err := h.authService.Register(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: message})
}

func (h *UserHandler) AddRole(c *fiber.Ctx) error {
	var req dto.AddRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	message, err := h.authService.AddRole(&req)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: message})
}
