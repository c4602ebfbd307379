package models

import "gorm.io/gorm"

// Listing is a rentable property record. ImageURL is the public path the
// browser loads, ImageFile the stored filename inside the upload directory.
type Listing struct {
	gorm.Model
	Title       string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null"`
	Location    string  `gorm:"not null;index"`
	ImageURL    string
	ImageFile   string
	UserID      uint     `gorm:"not null;index"`
	User        User     `gorm:"foreignKey:UserID"`
	Reviews     []Review `gorm:"constraint:OnDelete:CASCADE;"`
}
