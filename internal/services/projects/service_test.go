package projects

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appdb "portfolio-backend/internal/db"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

func setupTestDB(t *testing.T, seedStates bool) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, appdb.Migrate(database))
	if seedStates {
		require.NoError(t, appdb.SeedStates(database))
	}
	return database
}

func newTestService(database *gorm.DB) *Service {
	return NewService(
		repository.NewProjectRepository(database),
		repository.NewServiceRepository(database),
	)
}

func seedService(t *testing.T, database *gorm.DB, designation string, basePrice float64) models.Service {
	t.Helper()
	service := models.Service{Designation: designation, BasePrice: basePrice, Active: true}
	require.NoError(t, database.Create(&service).Error)
	return service
}

func TestCreateComputesBudgetFromServices(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)
	seo := seedService(t, database, "SEO", 500)

	project, err := svc.Create(CreateInput{
		Name:       "Company site",
		ServiceIDs: []uuid.UUID{web.ID, seo.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 2000.00, project.BudgetTotal)
	require.Len(t, project.Services, 2)
	for _, link := range project.Services {
		assert.Equal(t, 1, link.Quantity)
		assert.Equal(t, link.UnitPrice, link.LineTotal)
	}
	require.NotNil(t, project.State)
	assert.Equal(t, models.StatePending, project.State.Code)
}

func TestCreateSkipsUnknownServiceIDs(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)

	project, err := svc.Create(CreateInput{
		Name:       "Company site",
		ServiceIDs: []uuid.UUID{web.ID, uuid.New(), uuid.New()},
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.00, project.BudgetTotal)
	assert.Len(t, project.Services, 1)
}

func TestCreateFailsWithoutPendingState(t *testing.T) {
	database := setupTestDB(t, false)
	svc := newTestService(database)

	_, err := svc.Create(CreateInput{Name: "Company site"})
	require.ErrorIs(t, err, ErrStateNotSeeded)

	var count int64
	require.NoError(t, database.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateWithServicesOmittedLeavesAssociationsAlone(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)
	project, err := svc.Create(CreateInput{Name: "Old name", ServiceIDs: []uuid.UUID{web.ID}})
	require.NoError(t, err)

	newName := "New name"
	updated, err := svc.Update(project.ID, UpdateInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, 1500.00, updated.BudgetTotal)
	assert.Len(t, updated.Services, 1)
}

func TestUpdateWithEmptyServicesClearsAssociationsAndBudget(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)
	project, err := svc.Create(CreateInput{Name: "Company site", ServiceIDs: []uuid.UUID{web.ID}})
	require.NoError(t, err)

	empty := []uuid.UUID{}
	updated, err := svc.Update(project.ID, UpdateInput{ServiceIDs: &empty})
	require.NoError(t, err)

	assert.Zero(t, updated.BudgetTotal)
	assert.Empty(t, updated.Services)

	var count int64
	require.NoError(t, database.Model(&models.ProjectService{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateReplacesAssociationsAndSkipsUnknown(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)
	seo := seedService(t, database, "SEO", 500)
	project, err := svc.Create(CreateInput{Name: "Company site", ServiceIDs: []uuid.UUID{web.ID}})
	require.NoError(t, err)

	selection := []uuid.UUID{seo.ID, uuid.New()}
	updated, err := svc.Update(project.ID, UpdateInput{ServiceIDs: &selection})
	require.NoError(t, err)

	assert.Equal(t, 500.00, updated.BudgetTotal)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, seo.ID, updated.Services[0].ServiceID)
}

func TestUpdateSnapshotsUnitPriceAtAssociationTime(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	web := seedService(t, database, "Web Development", 1500)
	project, err := svc.Create(CreateInput{Name: "Company site", ServiceIDs: []uuid.UUID{web.ID}})
	require.NoError(t, err)
	require.Equal(t, 1500.00, project.Services[0].UnitPrice)

	// Raising the base price later must not touch the existing link.
	require.NoError(t, database.Model(&models.Service{}).Where("id = ?", web.ID).Update("base_price", 9999).Error)

	reloaded, err := svc.Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.00, reloaded.Services[0].UnitPrice)
	assert.Equal(t, 1500.00, reloaded.BudgetTotal)
}

func TestUpdateNotFound(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	name := "whatever"
	_, err := svc.Update(uuid.New(), UpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	database := setupTestDB(t, true)
	svc := newTestService(database)

	project, err := svc.Create(CreateInput{Name: "Company site"})
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(project.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)
	require.NotNil(t, deactivated.State)
	assert.Equal(t, models.StateDeactivated, deactivated.State.Code)

	// Second call no longer matches an active row.
	_, err = svc.Deactivate(project.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateFailsWithoutDeactivatedState(t *testing.T) {
	database := setupTestDB(t, false)
	svc := newTestService(database)

	// Seed only the pending state so creation works.
	require.NoError(t, database.Create(&models.ProjectState{Code: models.StatePending, Designation: "Pending"}).Error)
	project, err := svc.Create(CreateInput{Name: "Company site"})
	require.NoError(t, err)

	_, err = svc.Deactivate(project.ID)
	require.ErrorIs(t, err, ErrStateNotSeeded)
}
