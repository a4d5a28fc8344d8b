package main

import (
	"log"
	"os"

	"go-catalog-api/internal/model"
	"go-catalog-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123!"
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	// 3. Create the admin, or reset its password if it already exists
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		admin := &model.User{Name: name, Email: email}
		if err := admin.SetPassword(password); err != nil {
			log.Fatalf("❌ Failed to hash password: %v", err)
		}
		if err := db.Create(admin).Error; err != nil {
			log.Fatalf("❌ Failed to create admin user: %v", err)
		}
		log.Printf("✅ Admin user created: %s", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", email)
}
