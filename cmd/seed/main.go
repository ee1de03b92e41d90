package main

import (
	"log"

	"go-shop-api/internal/model"
	"go-shop-api/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a default admin account and a small demo catalog so the storefront
// has something to sell right after first boot.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.SizeProduct{},
		&model.Transaction{},
		&model.TransactionProduct{},
	)

	// 3. Seed admin
	email := "admin@example.com"
	var admin model.User
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		admin = model.User{
			FirstName: "Master",
			LastName:  "Administrator",
			Email:     email,
			Role:      model.RoleAdmin,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user created: %s / admin123", email)
	} else {
		log.Printf("Admin user %s already exists, skipping", email)
	}

	// 4. Seed demo catalog
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	products := []model.Product{
		{
			Name:        "Classic Canvas Low",
			Price:       450000,
			Description: "Everyday low-top canvas sneakers",
			SizeProducts: []model.SizeProduct{
				{Size: "40", Stock: 10},
				{Size: "41", Stock: 8},
				{Size: "42", Stock: 5},
			},
		},
		{
			Name:        "Trail Runner V2",
			Price:       820000,
			Description: "Lightweight trail running shoes",
			SizeProducts: []model.SizeProduct{
				{Size: "41", Stock: 6},
				{Size: "42", Stock: 12},
				{Size: "43", Stock: 4},
			},
		},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("Seeded %d demo products", len(products))
}
