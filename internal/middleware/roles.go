package middleware

import (
	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RoleRequired gates a route on a role claim of the verified access
// token. Must run after JWTProtected.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return apperr.Unauthorized("missing access token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperr.Unauthorized("invalid claims")
		}

		if roles, ok := claims["roles"].([]interface{}); ok {
			for _, r := range roles {
				if name, ok := r.(string); ok && name == role {
					return c.Next()
				}
			}
		}

		return apperr.New(apperr.KindUnauthorized, role+" role required")
	}
}
