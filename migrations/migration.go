package main

import (
	"os"

	"stayhub/infra"
	"stayhub/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	infra.Initialize()
	infra.SetupLogger()

	db := infra.SetupDB()
	if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.RevokedToken{}); err != nil {
		log.Fatalf("Failed to migrate revoked token database: %v", err)
	}

	if os.Getenv("SEED") == "true" {
		if err := seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Info("Seeded sample data")
	}
}

// seed inserts an admin, a demo user and a few listings with reviews.
// It is a no-op when users already exist.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{Username: "admin", Email: "admin@stayhub.local", Password: string(hash), Role: "admin"}
	demo := models.User{Username: "demo", Email: "demo@stayhub.local", Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	listings := []models.Listing{
		{Title: "Seaside Cottage", Description: "Small cottage right on the beach", Price: 120, Location: "Brighton", UserID: demo.ID},
		{Title: "Forest Cabin", Description: "A quiet cabin under the pines", Price: 85, Location: "Black Forest", UserID: demo.ID},
		{Title: "City Loft", Description: "Loft with a view over the old town", Price: 150, Location: "Porto", UserID: admin.ID},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{Rating: 5, Comment: "Waking up to the sea was unreal", UserID: admin.ID, ListingID: listings[0].ID},
		{Rating: 4, Comment: "Cozy, but bring warm socks", UserID: admin.ID, ListingID: listings[1].ID},
	}
	return db.Create(&reviews).Error
}
