package models

import "gorm.io/gorm"

// RevokedToken records an API access token that was logged out before its
// expiry. Expired rows are swept opportunistically.
type RevokedToken struct {
	gorm.Model
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
