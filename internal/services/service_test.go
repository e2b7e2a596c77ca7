package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cinelog/movie-api/internal/config"
	"github.com/cinelog/movie-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func newTestConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret-test-secret-test-secret"
	cfg.RefreshExpiryDays = 10
	return cfg
}
