// database/migrate.go
package database

import (
	"painel-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Factory{},
		&models.Quote{},
		&models.Container{},
		&models.ImportMeta{},
	)
}
