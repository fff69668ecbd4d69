package repository

import (
	"time"

	"github.com/OmarZED/Delivery-System/entity"
	"gorm.io/gorm"
)

// TokenRepository tracks revoked JWTs (by jti) so logout invalidates the
// bearer token before its natural expiry.
type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Revoke(jti string, expiresAt time.Time) error {
	return r.DB.Where(entity.RevokedToken{JTI: jti}).
		Attrs(entity.RevokedToken{ExpiresAt: expiresAt}).
		FirstOrCreate(&entity.RevokedToken{}).Error
}

func (r *TokenRepository) IsRevoked(jti string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.RevokedToken{}).Where("jti = ?", jti).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// PurgeExpired drops blacklist rows whose tokens have already expired.
func (r *TokenRepository) PurgeExpired() error {
	return r.DB.Where("expires_at < ?", time.Now()).
		Unscoped().
		Delete(&entity.RevokedToken{}).Error
}
