package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"contractdesk-backend/repository"
)

// Generates the ADMIN_PASSWORD_HASH value the server reads at startup. The
// store is in-memory and process-local, so unlike a database seeder this
// tool emits configuration instead of mutating state.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables: %v", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = repository.SeedAdminPassword
		log.Println("Warning: ADMIN_PASSWORD not set, hashing the default seed password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Round-trip check before handing the hash out
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		log.Fatalf("Hash verification failed: %v", err)
	}

	fmt.Println("Add this to your .env:")
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Printf("Admin username: %s\n", repository.SeedAdminUsername)
}
