package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"size:2000" json:"description"`
	BudgetTotal float64       `gorm:"type:decimal(12,2);not null;default:0" json:"budgetTotal"`
	StateID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"stateId"`
	State       *ProjectState `gorm:"foreignKey:StateID" json:"state,omitempty"`
	ClientID    *uuid.UUID    `gorm:"type:uuid;index" json:"clientId,omitempty"`
	Client      *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	StartDate   *time.Time    `json:"startDate,omitempty"`
	EndDate     *time.Time    `json:"endDate,omitempty"`
	Active      bool          `gorm:"default:true;index" json:"active"`
	Services    []ProjectService `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
