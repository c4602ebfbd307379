package repositories

import (
	"errors"
	"time"

	"stayhub/models"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	AddRevokedToken(token string, expiresAt int64) error
	IsTokenRevoked(token string) (bool, error)
	CleanExpiredTokens() error
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

// AddRevokedToken records a token as revoked. Revoking a token that is
// already on the list is a no-op, so logging out twice succeeds.
func (r *TokenRepository) AddRevokedToken(token string, expiresAt int64) error {
	revoked := models.RevokedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.Where(models.RevokedToken{Token: token}).FirstOrCreate(&revoked).Error
}

func (r *TokenRepository) IsTokenRevoked(token string) (bool, error) {
	var revoked models.RevokedToken
	result := r.db.Where("token = ?", token).First(&revoked)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func (r *TokenRepository) CleanExpiredTokens() error {
	now := time.Now().Unix()
	return r.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{}).Error
}
