package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) DB() *gorm.DB {
	return r.db
}

// GetByID fetches a project with its state, client and service links preloaded.
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("State").
		Preload("Client").
		Preload("Services.Service").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns projects newest first, optionally restricted to active ones.
func (r *ProjectRepository) List(activeOnly bool) ([]models.Project, error) {
	query := r.db.
		Preload("State").
		Preload("Client").
		Preload("Services.Service").
		Order("created_at desc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var projects []models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// StateByCode resolves a project state row by its stable code.
func (r *ProjectRepository) StateByCode(code string) (*models.ProjectState, error) {
	var state models.ProjectState
	if err := r.db.First(&state, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &state, nil
}
