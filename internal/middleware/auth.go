package middleware

import (
	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return apperr.Unauthorized("invalid or expired access token")
		},
	})
}
