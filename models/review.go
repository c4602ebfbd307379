package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"not null;index"`
	ListingID uint   `gorm:"not null;index"`
	User      User   `gorm:"foreignKey:UserID"`
}
