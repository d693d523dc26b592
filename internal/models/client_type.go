package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Designation string    `gorm:"uniqueIndex;size:120;not null" json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *ClientType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
