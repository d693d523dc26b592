package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Email        string     `gorm:"size:255;index" json:"email"`
	Phone        string     `gorm:"size:50" json:"phone"`
	Address      string     `gorm:"size:500" json:"address"`
	TaxNumber    string     `gorm:"size:50" json:"taxNumber"`
	ClientTypeID *uuid.UUID `gorm:"type:uuid;index" json:"clientTypeId,omitempty"`
	ClientType   *ClientType `gorm:"foreignKey:ClientTypeID" json:"clientType,omitempty"`
	Active       bool       `gorm:"default:true" json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
