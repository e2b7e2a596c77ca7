package routes

import (
	"time"

	"github.com/cinelog/movie-api/internal/config"
	"github.com/cinelog/movie-api/internal/handlers"
	"github.com/cinelog/movie-api/internal/middleware"
	"github.com/cinelog/movie-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	movieHandler *handlers.MovieHandler,
	tokenHandler *handlers.TokenHandler,
	userHandler *handlers.UserHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Movies
	movies := api.Group("/movies")
	movies.Post("/", movieHandler.Create)
	movies.Get("/", movieHandler.List)
	movies.Get("/:id", movieHandler.GetByID)
	movies.Put("/:id", movieHandler.Update)
	movies.Delete("/:id", movieHandler.Delete)

	// Tokens, with a stricter rate limit: 10 req/min per IP
	tokens := api.Group("/tokens")
	tokens.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	tokens.Post("/", tokenHandler.GetToken)
	tokens.Post("/refresh-token", tokenHandler.Refresh)
	tokens.Post("/revoke-token", tokenHandler.Revoke)
	tokens.Post("/:id", middleware.JWTProtected(cfg), tokenHandler.ListRefreshTokens)

	// Users
	users := api.Group("/users")
	users.Post("/register", userHandler.Register)
	users.Post("/addrole", userHandler.AddRole)

	// Notifications, administrators only
	api.Get("/notifications",
		middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.RoleAdministrator),
		notificationHandler.Send)
}
