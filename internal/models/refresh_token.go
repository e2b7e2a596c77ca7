package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is owned by a user and never deleted: revocation is a
// tombstone via the Revoked timestamp.
type RefreshToken struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Token   string     `gorm:"size:64;not null;index" json:"token"`
	Created time.Time  `gorm:"not null" json:"created"`
	Expires time.Time  `gorm:"not null" json:"expires"`
	Revoked *time.Time `json:"revoked"`
}

func (t *RefreshToken) IsExpired() bool {
	return !time.Now().UTC().Before(t.Expires)
}

func (t *RefreshToken) IsActive() bool {
	return t.Revoked == nil && !t.IsExpired()
}
