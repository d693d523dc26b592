package db

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/utils"
)

var stateSeeds = []models.ProjectState{
	{Code: models.StatePending, Designation: "Pending"},
	{Code: models.StateStarted, Designation: "Started"},
	{Code: models.StateInProgress, Designation: "In Progress"},
	{Code: models.StateCompleted, Designation: "Completed"},
	{Code: models.StateDeactivated, Designation: "Deactivated"},
}

// SeedStates inserts the project state rows that are missing. Designations match
// the names the original data set was seeded with.
func SeedStates(database *gorm.DB) error {
	for _, seed := range stateSeeds {
		var existing models.ProjectState
		err := database.Where("code = ?", seed.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := database.Create(&seed).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates a bootstrap admin user when the user table is empty and
// ADMIN_EMAIL/ADMIN_PASSWORD are configured.
func SeedAdmin(database *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := database.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         "Administrator",
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := database.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("seeded bootstrap admin user %s", email)
	return nil
}
