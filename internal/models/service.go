package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Designation   string       `gorm:"size:255;not null" json:"designation"`
	Description   string       `gorm:"size:1000" json:"description"`
	BasePrice     float64      `gorm:"type:decimal(12,2);not null" json:"basePrice"`
	Cost          float64      `gorm:"type:decimal(12,2)" json:"cost"`
	ServiceTypeID *uuid.UUID   `gorm:"type:uuid;index" json:"serviceTypeId,omitempty"`
	ServiceType   *ServiceType `gorm:"foreignKey:ServiceTypeID" json:"serviceType,omitempty"`
	Active        bool         `gorm:"default:true" json:"active"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
