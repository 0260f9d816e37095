package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"contractdesk-backend/handlers"
	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// The store is built once and handed to the handlers; it holds all
	// entity state for the life of the process.
	store := repository.NewMemStore()
	log.Printf("In-memory store initialized (admin user seeded at ID 1)")

	// ADMIN_PASSWORD_HASH replaces the seeded admin password. Generate one
	// with cmd/create-admin.
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		if _, err := store.UpdateUser(1, models.UpdateUser{Password: &hash}); err != nil {
			log.Fatalf("Failed to set admin password: %v", err)
		}
		log.Printf("Admin password set from ADMIN_PASSWORD_HASH")
	}

	// Setup Gin router
	r := gin.Default()
	r.Use(handlers.RequestID())
	r.Use(cors.New(corsConfig()))

	handlers.Register(r, store)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// corsConfig allows the SPA origin(s) from CORS_ORIGINS, or any origin in
// development when the variable is unset.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
