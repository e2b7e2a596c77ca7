package models

import (
	"strings"

	"github.com/google/uuid"
)

const (
	RoleAdministrator = "Administrator"
	RoleModerator     = "Moderator"
	RoleUser          = "User"
)

// DefaultRole is granted on registration.
const DefaultRole = RoleUser

var allRoles = []string{RoleAdministrator, RoleModerator, RoleUser}

// NormalizeRole matches name case-insensitively against the fixed role
// set and returns the canonical spelling.
func NormalizeRole(name string) (string, bool) {
	for _, r := range allRoles {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}

type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role" json:"-"`
	Role   string    `gorm:"size:20;not null;uniqueIndex:idx_user_roles_user_role" json:"role"`
}
