package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Initialize loads the optional .env file. ENV_FILE overrides the default
// path for running several instances side by side.
func Initialize() {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("No %s file found, relying on process environment", path)
	}
}
