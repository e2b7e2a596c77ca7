package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/cinelog/movie-api/internal/models"
	"github.com/google/uuid"
)

// RefreshTokenService mints opaque refresh tokens. 32 bytes of entropy
// makes a uniqueness check against existing tokens unnecessary.
type RefreshTokenService struct {
	expiresInDays int
}

func NewRefreshTokenService(expiresInDays int) *RefreshTokenService {
	if expiresInDays <= 0 {
		expiresInDays = 10
	}
	return &RefreshTokenService{expiresInDays: expiresInDays}
}

func (s *RefreshTokenService) CreateRefreshToken() (models.RefreshToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return models.RefreshToken{}, fmt.Errorf("failed to generate random bytes: %w", err)
	}

	now := time.Now().UTC()
	return models.RefreshToken{
		ID:      uuid.New(),
		Token:   base64.StdEncoding.EncodeToString(raw),
		Created: now,
		Expires: now.AddDate(0, 0, s.expiresInDays),
	}, nil
}
