package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Document struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	FilePath  string         `gorm:"size:1000;not null" json:"filePath"`
	MimeType  string         `gorm:"size:120" json:"mimeType"`
	SizeBytes int64          `json:"sizeBytes"`
	ProjectID *uuid.UUID     `gorm:"type:uuid;index" json:"projectId,omitempty"`
	ClientID  *uuid.UUID     `gorm:"type:uuid;index" json:"clientId,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
