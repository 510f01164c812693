//go:build ignore

// One-off utility: creates the initial admin account.
//
//	go run scripts/seedAdmin.go admin admin@example.com <password>
package main

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("usage: %s <username> <email> <password>", os.Args[0])
	}

	config.LoadConfig()
	database.ConnectDb()

	username, email, password := os.Args[1], os.Args[2], os.Args[3]

	var existing models.User
	if err := database.Database.Db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Fatalf("user with email %s already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Role:     models.RoleAdmin,
		Password: string(hashed),
	}

	if err := database.Database.Db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %s created with id %d", username, admin.ID)
}
