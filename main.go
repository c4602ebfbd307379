package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub/constants"
	"stayhub/infra"
	"stayhub/models"
	"stayhub/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	infra.Initialize()
	infra.SetupLogger()

	db := infra.SetupDB()
	tokenDB := infra.SetupTokenDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Review{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if err := tokenDB.AutoMigrate(&models.RevokedToken{}); err != nil {
			log.Fatalf("Failed to migrate revoked token database: %v", err)
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = constants.DefaultUploadDir
	}

	r := server.SetupRouter(db, tokenDB, server.Config{
		TemplateGlob: "templates/**/*.html",
		UploadDir:    uploadDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}
