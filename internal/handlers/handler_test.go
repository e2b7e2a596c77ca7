package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cinelog/movie-api/internal/cache"
	"github.com/cinelog/movie-api/internal/config"
	"github.com/cinelog/movie-api/internal/handlers"
	"github.com/cinelog/movie-api/internal/middleware"
	"github.com/cinelog/movie-api/internal/models"
	"github.com/cinelog/movie-api/internal/routes"
	"github.com/cinelog/movie-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route table against an in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.RefreshToken{},
		&models.Movie{},
	))

	cfg := config.Load()
	cfg.JWTSecret = "handler-test-secret"

	listCache := cache.New()
	t.Cleanup(listCache.Stop)

	movieService := services.NewMovieService(db, listCache)
	authService := services.NewAuthService(db, cfg)
	notifications := services.NewNotificationHandler(
		services.EmailNotificationService{},
		services.SMSNotificationService{},
	)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(cfg)})
	app.Use(requestid.New())
	routes.Setup(app, cfg,
		handlers.NewMovieHandler(movieService, cfg),
		handlers.NewTokenHandler(authService),
		handlers.NewUserHandler(authService),
		handlers.NewNotificationHandler(notifications),
		handlers.NewHealthHandler(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, mutate ...func(*http.Request)) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
