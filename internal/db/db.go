package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// Migrate runs AutoMigrate for every model; shared with the sqlite test setup.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.ClientType{},
		&models.Client{},
		&models.ProjectState{},
		&models.ServiceType{},
		&models.Service{},
		&models.Project{},
		&models.ProjectService{},
		&models.Task{},
		&models.Invoice{},
		&models.Payment{},
		&models.Document{},
		&models.ContactMessage{},
	)
}
