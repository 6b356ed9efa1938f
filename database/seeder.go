package database

import (
	"fmt"
	"painel-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders garante o usuário admin inicial.
func RunSeeders(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@painel.local").Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Failed to hash seed password:", err)
		return
	}

	admin := models.User{
		Name:     "Administrador",
		Email:    "admin@painel.local",
		Password: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		fmt.Println("Failed to seed admin user:", err)
		return
	}

	fmt.Println("Seeded admin user:", admin.Email)
}
