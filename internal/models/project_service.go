package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService links a project to one of its selected services. UnitPrice is a
// snapshot of the service base price at association time; the link set is replaced
// wholesale on project update, so at most one row exists per (project, service) pair.
type ProjectService struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"projectId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64   `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	LineTotal float64   `gorm:"type:decimal(12,2);not null" json:"lineTotal"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *ProjectService) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
