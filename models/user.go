package models

import (
	"stayhub/constants"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string    `gorm:"not null;unique"`
	Email    string    `gorm:"not null;unique"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"not null;default:'user'"`
	Listings []Listing `gorm:"constraint:OnDelete:CASCADE;"`
	Reviews  []Review  `gorm:"constraint:OnDelete:CASCADE;"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
