package main

import (
	"log"
	"os"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"
	"github.com/Abhishek-ak7/overseas-site-sub002/database"
	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"golang.org/x/crypto/bcrypt"
)

// Creates (or promotes) the back-office admin account.
// Usage: go run scripts/createAdmin.go <email> <password> [name]
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: createAdmin <email> <password> [name]")
	}

	email := os.Args[1]
	password := os.Args[2]
	name := "Administrator"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user models.User
	result := database.Database.Db.Where("email = ? AND is_deleted = ?", email, false).First(&user)
	if result.Error == nil {
		// Existing account gets promoted
		user.Role = "ADMIN"
		if err := database.Database.Db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("Promoted existing user %s to ADMIN", email)
		return
	}

	user = models.User{
		Name:            name,
		Email:           email,
		Password:        string(hashed),
		Role:            "ADMIN",
		IsEmailVerified: true,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s (id %d)", email, user.ID)
}
