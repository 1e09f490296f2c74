package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMimeType is stored when the client does not send a content type.
const DefaultMimeType = "application/octet-stream"

type File struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Filename     string     `json:"filename" gorm:"not null"`     // server-generated, unique on disk
	OriginalName string     `json:"originalName" gorm:"not null"` // client-supplied
	MimeType     string     `json:"mimeType" gorm:"not null"`
	Size         int64      `json:"size" gorm:"not null"`            // bytes
	Path         string     `json:"-" gorm:"uniqueIndex;not null"`   // storage path, owned by the blob store
	Shop         string     `json:"shop" gorm:"index;not null"`      // tenant
	FolderID     *uuid.UUID `json:"folderId" gorm:"type:uuid;index"` // nil = root
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (f *File) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// InFolder reports whether the file currently sits in folderID (nil = root).
func (f *File) InFolder(folderID *uuid.UUID) bool {
	if f.FolderID == nil || folderID == nil {
		return f.FolderID == nil && folderID == nil
	}
	return *f.FolderID == *folderID
}
