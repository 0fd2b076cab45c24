// Bootstrap script to create or update the admin account
// cmd/create-admin/main.go
package main

import (
	"flag"
	"log"
	"time"

	"scholarship-portal-api/config"
	"scholarship-portal-api/models"
	"scholarship-portal-api/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -email <email> -password <password> [-name <name>]")
	}

	if !utils.ValidateEmail(*email) {
		log.Fatal("Invalid email format")
	}
	if valid, message := utils.ValidatePassword(*password); !valid {
		log.Fatal(message)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	hashedPassword, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()

	var user models.User
	err = config.DB.Where("email = ? AND delete_at IS NULL", *email).First(&user).Error
	switch {
	case err == nil:
		user.Password = hashedPassword
		user.RoleID = models.RoleAdmin
		user.UpdateAt = &now
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatal("Failed to update admin user:", err)
		}
		log.Printf("Updated existing admin user %s\n", *email)
	case err == gorm.ErrRecordNotFound:
		user = models.User{
			FullName: *name,
			Email:    *email,
			Password: hashedPassword,
			RoleID:   models.RoleAdmin,
			CreateAt: &now,
			UpdateAt: &now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
		log.Printf("Created admin user %s\n", *email)
	default:
		log.Fatal("Failed to look up admin user:", err)
	}
}
