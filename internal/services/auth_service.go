package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/config"
	"github.com/cinelog/movie-api/internal/dto"
	"github.com/cinelog/movie-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// errTokenInactive signals a lost rotation race or a revoked/expired
// token; it never leaves this package.
var errTokenInactive = errors.New("refresh token not active")

// AuthService derives all state from storage on every call; there is no
// in-process session object, so it scales horizontally as-is.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *RefreshTokenService
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		cfg:    cfg,
		tokens: NewRefreshTokenService(cfg.RefreshExpiryDays),
	}
}

// Register creates the user with the default role. A taken email is a
// business outcome, not an error: the message says so and nothing is
// created.
func (s *AuthService) Register(req *dto.RegisterRequest) (string, error) {
	if req.Email == "" || req.Username == "" || len(req.Password) < 8 {
		return "", apperr.Validation("email and username are required and password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fmt.Sprintf("Email %s already exists", req.Email), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Roles: []models.UserRole{
			{ID: uuid.New(), Role: models.DefaultRole},
		},
	}
	user.Roles[0].UserID = user.ID

	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return fmt.Sprintf("User registered with username %s", user.Username), nil
}

// GetToken validates credentials and issues a signed access token. If
// the user still has an active refresh token it is reused; otherwise a
// new one is minted and appended to the collection.
func (s *AuthService) GetToken(req *dto.TokenRequest) (*dto.AuthResult, error) {
	var user models.User
	err := s.db.Preload("Roles").Preload("RefreshTokens").
		Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AuthResult{Message: "Incorrect email or password."}, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return &dto.AuthResult{Message: "Incorrect email or password."}, nil
	}

	refresh := user.ActiveRefreshToken()
	if refresh == nil {
		minted, err := s.tokens.CreateRefreshToken()
		if err != nil {
			return nil, err
		}
		minted.UserID = user.ID
		if err := s.db.Create(&minted).Error; err != nil {
			return nil, fmt.Errorf("failed to store refresh token: %w", err)
		}
		refresh = &minted
	}

	return s.authResult(&user, refresh)
}

// RefreshToken exchanges a still-active refresh token for a new pair.
// The revoke of the old token and the insert of the new one run in one
// transaction guarded by a revoke-if-active update, so two concurrent
// calls with the same token cannot both rotate it.
func (s *AuthService) RefreshToken(token string) (*dto.AuthResult, error) {
	var stored models.RefreshToken
	if err := s.db.First(&stored, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AuthResult{Message: "Token did not match any users."}, nil
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	var user models.User
	if err := s.db.Preload("Roles").First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	var replacement models.RefreshToken
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&models.RefreshToken{}).
			Where("token = ? AND revoked IS NULL AND expires > ?", token, now).
			Update("revoked", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errTokenInactive
		}

		minted, err := s.tokens.CreateRefreshToken()
		if err != nil {
			return err
		}
		minted.UserID = user.ID
		replacement = minted
		return tx.Create(&replacement).Error
	})
	if err != nil {
		if errors.Is(err, errTokenInactive) {
			return &dto.AuthResult{Message: "Token not active."}, nil
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	slog.Info("refresh token rotated", "user_id", user.ID)
	return s.authResult(&user, &replacement)
}

// RevokeToken tombstones an active token. Unknown, expired or already
// revoked tokens report false.
func (s *AuthService) RevokeToken(token string) (bool, error) {
	now := time.Now().UTC()
	res := s.db.Model(&models.RefreshToken{}).
		Where("token = ? AND revoked IS NULL AND expires > ?", token, now).
		Update("revoked", now)
	if res.Error != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// AddRole grants one of the fixed roles after re-validating credentials.
func (s *AuthService) AddRole(req *dto.AddRoleRequest) (string, error) {
	var user models.User
	err := s.db.Preload("Roles").Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Incorrect email or password.", nil
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "Incorrect email or password.", nil
	}

	role, ok := models.NormalizeRole(req.Role)
	if !ok {
		return fmt.Sprintf("Role %s not found.", req.Role), nil
	}
	if user.HasRole(role) {
		return fmt.Sprintf("User %s already has role %s.", user.Email, role), nil
	}

	assignment := models.UserRole{ID: uuid.New(), UserID: user.ID, Role: role}
	if err := s.db.Create(&assignment).Error; err != nil {
		return "", fmt.Errorf("failed to assign role: %w", err)
	}

	return fmt.Sprintf("Added role %s to user %s.", role, user.Email), nil
}

// GetByID loads a user with their full refresh-token history, nil when
// no user matches.
func (s *AuthService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Roles").Preload("RefreshTokens").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) authResult(user *models.User, refresh *models.RefreshToken) (*dto.AuthResult, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{
		IsAuthenticated:        true,
		Username:               user.Username,
		Email:                  user.Email,
		Roles:                  user.RoleNames(),
		Token:                  accessToken,
		RefreshToken:           refresh.Token,
		RefreshTokenExpiration: refresh.Expires,
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"jti":   uuid.NewString(),
		"email": user.Email,
		"uid":   user.ID.String(),
		"roles": user.RoleNames(),
		"iss":   s.cfg.JWTIssuer,
		"aud":   s.cfg.JWTAudience,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
