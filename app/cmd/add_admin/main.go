package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"school-management-system/app/config"
	"school-management-system/app/database"
	"school-management-system/app/models"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	fullName := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("-email and -password are required")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	user := &models.User{
		Username: *username,
		Email:    *email,
		Password: *password,
		FullName: *fullName,
		Role:     models.RoleAdmin,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating admin: ", err)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.Username, user.Email)
}
