package dto

import "time"

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddRoleRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RevokeTokenRequest struct {
	Token string `json:"token"`
}

// AuthResult is returned by every token operation. Authentication
// failures are carried in Message with IsAuthenticated=false rather than
// as errors: the boundary decides the status. The refresh token itself
// travels only in the cookie.
type AuthResult struct {
	Message                string    `json:"message,omitempty"`
	IsAuthenticated        bool      `json:"isAuthenticated"`
	Username               string    `json:"username,omitempty"`
	Email                  string    `json:"email,omitempty"`
	Roles                  []string  `json:"roles,omitempty"`
	Token                  string    `json:"token,omitempty"`
	RefreshToken           string    `json:"-"`
	RefreshTokenExpiration time.Time `json:"refreshTokenExpiration,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
