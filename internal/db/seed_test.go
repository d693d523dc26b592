package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(database))
	return database
}

func TestSeedStatesIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, SeedStates(database))
	require.NoError(t, SeedStates(database))

	var count int64
	require.NoError(t, database.Model(&models.ProjectState{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	var pending models.ProjectState
	require.NoError(t, database.Where("code = ?", models.StatePending).First(&pending).Error)
	assert.Equal(t, "Pending", pending.Designation)
}

func TestSeedStatesFillsOnlyMissingRows(t *testing.T) {
	database := openTestDB(t)

	custom := models.ProjectState{Code: models.StatePending, Designation: "Custom Pending"}
	require.NoError(t, database.Create(&custom).Error)

	require.NoError(t, SeedStates(database))

	var pending models.ProjectState
	require.NoError(t, database.Where("code = ?", models.StatePending).First(&pending).Error)
	assert.Equal(t, "Custom Pending", pending.Designation)

	var count int64
	require.NoError(t, database.Model(&models.ProjectState{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestSeedAdminCreatesBootstrapUser(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, SeedAdmin(database, "Admin@Example.com", "sup3rsecret"))

	var user models.User
	require.NoError(t, database.First(&user).Error)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "sup3rsecret"))
}

func TestSeedAdminSkipsWhenUsersExist(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.Create(&models.User{
		Name:         "Existing",
		Email:        "existing@example.com",
		PasswordHash: "x",
		Role:         "admin",
	}).Error)

	require.NoError(t, SeedAdmin(database, "admin@example.com", "sup3rsecret"))

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, SeedAdmin(database, "", ""))

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
