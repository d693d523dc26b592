package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payments are not reconciled against the owning invoice total; the sum of
// payments may exceed or fall short of it without error.
type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`
	Invoice     *Invoice  `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentDate time.Time `gorm:"not null" json:"paymentDate"`
	Method      string    `gorm:"size:50" json:"method"`
	Notes       string    `gorm:"size:500" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
