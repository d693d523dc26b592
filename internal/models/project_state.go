package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stable state codes. The Designation column keeps the human-readable names
// existing data was seeded with; all lookups go through the code.
const (
	StatePending     = "pending"
	StateStarted     = "started"
	StateInProgress  = "in_progress"
	StateCompleted   = "completed"
	StateDeactivated = "deactivated"
)

type ProjectState struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Designation string    `gorm:"size:120;not null" json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *ProjectState) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
