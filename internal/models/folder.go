package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder is a flat container of files; folders never nest.
type Folder struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Shop      string    `json:"shop" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Files     []File    `json:"files,omitempty" gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"` // one-to-many relation
}

func (f *Folder) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FolderSummary is a folder annotated with the number of files it holds.
type FolderSummary struct {
	Folder
	FileCount int64 `json:"fileCount"`
}
