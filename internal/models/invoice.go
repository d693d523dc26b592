package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice totals are always derived: VatAmount and Total are recomputed from
// SubTotal and VatRate by the billing service on every create and update.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;size:100;not null" json:"invoiceNumber"`
	ProjectID     uuid.UUID `gorm:"type:uuid;index;not null" json:"projectId"`
	Project       *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	IssueDate     time.Time `gorm:"not null" json:"issueDate"`
	DueDate       time.Time `gorm:"not null" json:"dueDate"`
	SubTotal      float64   `gorm:"type:decimal(12,2);not null" json:"subTotal"`
	VatRate       int       `gorm:"not null" json:"vatRate"`
	VatAmount     float64   `gorm:"type:decimal(12,2);not null" json:"vatAmount"`
	Total         float64   `gorm:"type:decimal(12,2);not null" json:"total"`
	Status        string    `gorm:"size:50;default:'issued'" json:"status"`
	Paid          bool      `gorm:"default:false" json:"paid"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
