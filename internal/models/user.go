package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email         string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName     string         `gorm:"size:100" json:"firstName"`
	LastName      string         `gorm:"size:100" json:"lastName"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Roles         []UserRole     `gorm:"foreignKey:UserID" json:"roles"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ActiveRefreshToken returns the first still-active token in the user's
// collection, nil when there is none. Under normal rotation at most one
// token is active.
func (u *User) ActiveRefreshToken() *RefreshToken {
	for i := range u.RefreshTokens {
		if u.RefreshTokens[i].IsActive() {
			return &u.RefreshTokens[i]
		}
	}
	return nil
}

func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}
