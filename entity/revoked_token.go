package entity

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken blacklists a JWT by its jti claim after logout. ExpiresAt
// mirrors the token expiry so stale rows can be purged.
type RevokedToken struct {
	gorm.Model
	JTI       string    `gorm:"uniqueIndex;not null" json:"jti"`
	ExpiresAt time.Time `json:"expiresAt"`
}
