package projects

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services/billing"
)

// ErrStateNotSeeded is returned when a lifecycle operation needs a project
// state row that does not exist in the state table.
var ErrStateNotSeeded = errors.New("project state not seeded")

// ErrNotFound is returned when the targeted project does not exist or is no
// longer active.
var ErrNotFound = errors.New("project not found")

type Service struct {
	projectRepo *repository.ProjectRepository
	serviceRepo *repository.ServiceRepository
	db          *gorm.DB
}

func NewService(projectRepo *repository.ProjectRepository, serviceRepo *repository.ServiceRepository) *Service {
	return &Service{
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		db:          projectRepo.DB(),
	}
}

// Get returns a project with its state, client and links preloaded.
func (s *Service) Get(id uuid.UUID) (*models.Project, error) {
	return s.projectRepo.GetByID(id)
}

// List returns projects newest first, optionally only the active ones.
func (s *Service) List(activeOnly bool) ([]models.Project, error) {
	return s.projectRepo.List(activeOnly)
}

type CreateInput struct {
	Name        string
	Description string
	ClientID    *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	ServiceIDs  []uuid.UUID
}

// UpdateInput carries partial updates. Nil fields are left untouched. The
// ServiceIDs pointer is the load-bearing part: a nil pointer means the service
// selection was not mentioned at all, while a pointer to an empty slice means
// "clear every association and zero the budget".
type UpdateInput struct {
	Name        *string
	Description *string
	StateID     *uuid.UUID
	ClientID    *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	ServiceIDs  *[]uuid.UUID
}

// Create inserts a project in the pending state and associates the selected
// services. Nothing is persisted when the pending state row is missing.
func (s *Service) Create(input CreateInput) (*models.Project, error) {
	pending, err := s.projectRepo.StateByCode(models.StatePending)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotSeeded, models.StatePending)
		}
		return nil, err
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		StateID:     pending.ID,
		ClientID:    input.ClientID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Active:      true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		budget, err := s.reconcileLinks(tx, project.ID, input.ServiceIDs)
		if err != nil {
			return err
		}
		project.BudgetTotal = budget
		return tx.Model(project).Update("budget_total", budget).Error
	})
	if err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(project.ID)
}

// Update applies the submitted fields and, only when the service selection was
// present in the request, replaces the association set and recomputes the
// budget. The whole operation runs in one transaction with the project row
// locked, so concurrent edits to the same project serialize instead of
// interleaving their delete-and-recreate sequences.
func (s *Service) Update(id uuid.UUID, input UpdateInput) (*models.Project, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			// Row lock so two concurrent edits cannot interleave their
			// delete-and-recreate sequences. Skipped on sqlite (tests).
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var project models.Project
		if err := query.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if input.Name != nil {
			project.Name = *input.Name
		}
		if input.Description != nil {
			project.Description = *input.Description
		}
		if input.StateID != nil {
			// Free-form transition: any submitted state is accepted.
			project.StateID = *input.StateID
		}
		if input.ClientID != nil {
			project.ClientID = input.ClientID
		}
		if input.StartDate != nil {
			project.StartDate = input.StartDate
		}
		if input.EndDate != nil {
			project.EndDate = input.EndDate
		}

		if err := tx.Save(&project).Error; err != nil {
			return err
		}

		if input.ServiceIDs == nil {
			return nil
		}

		budget, err := s.reconcileLinks(tx, project.ID, *input.ServiceIDs)
		if err != nil {
			return err
		}
		return tx.Model(&project).Update("budget_total", budget).Error
	})
	if err != nil {
		return nil, err
	}

	return s.projectRepo.GetByID(id)
}

// Deactivate soft-deletes an active project: active flips to false and the
// state moves to deactivated. A second call finds no active row and reports
// ErrNotFound, which keeps the operation idempotent.
func (s *Service) Deactivate(id uuid.UUID) (*models.Project, error) {
	deactivated, err := s.projectRepo.StateByCode(models.StateDeactivated)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotSeeded, models.StateDeactivated)
		}
		return nil, err
	}

	result := s.db.Model(&models.Project{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":   false,
			"state_id": deactivated.ID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.projectRepo.GetByID(id)
}

// reconcileLinks replaces the project's service links with the submitted
// selection and returns the resulting budget: the sum of the base prices of
// every service that resolved. IDs that do not resolve are skipped and logged;
// they contribute nothing and never abort the sibling links.
func (s *Service) reconcileLinks(tx *gorm.DB, projectID uuid.UUID, serviceIDs []uuid.UUID) (float64, error) {
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectService{}).Error; err != nil {
		return 0, err
	}

	services := s.serviceRepo.WithTx(tx)
	budget := 0.0
	for _, serviceID := range serviceIDs {
		service, err := services.GetByID(serviceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("project %s: skipping unknown service %s", projectID, serviceID)
				continue
			}
			return 0, err
		}

		link := models.ProjectService{
			ProjectID: projectID,
			ServiceID: service.ID,
			Quantity:  1,
			UnitPrice: service.BasePrice,
			LineTotal: service.BasePrice,
		}
		if err := tx.Create(&link).Error; err != nil {
			return 0, err
		}
		budget += service.BasePrice
	}

	return billing.RoundCurrency(budget), nil
}
