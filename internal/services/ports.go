package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rohits-web03/shopdrive/internal/models"
	"github.com/rohits-web03/shopdrive/internal/repositories"
)

//go:generate mockgen -destination=mocks/blob_store_mock.go -package=mocks -source=ports.go -exclude_interfaces=MetadataStore

// BlobStore stores file bytes at paths it generates itself. Callers treat
// paths as opaque.
type BlobStore interface {
	// EnsureReady prepares the storage root. Idempotent.
	EnsureReady(ctx context.Context) error

	// Write persists data under a new collision-free key and returns its path.
	Write(ctx context.Context, originalName string, data []byte) (string, error)

	// Read returns the bytes at path, or a NotFound error.
	Read(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a blob is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the blob; a missing blob is not an error.
	Delete(ctx context.Context, path string) error
}

// MetadataStore is the tenant-scoped record store for files and folders.
type MetadataStore interface {
	ListFiles(ctx context.Context, shop string, q repositories.FileQuery) ([]models.File, error)
	ListFolders(ctx context.Context, shop string, q repositories.FolderQuery) ([]models.FolderSummary, error)
	GetFile(ctx context.Context, shop string, id uuid.UUID) (*models.File, error)
	GetFolder(ctx context.Context, shop string, id uuid.UUID, withFiles bool) (*models.Folder, error)
	CreateFile(ctx context.Context, file *models.File) error
	CreateFolder(ctx context.Context, shop, name string) (*models.Folder, error)
	RenameFolder(ctx context.Context, shop string, id uuid.UUID, name string) (*models.Folder, error)
	UpdateFileFolder(ctx context.Context, shop string, id uuid.UUID, target *uuid.UUID) (*models.File, error)
	DeleteFile(ctx context.Context, shop string, id uuid.UUID) error
	DeleteFolder(ctx context.Context, shop string, id uuid.UUID) error
}

var (
	_ BlobStore     = (*repositories.LocalBlobStore)(nil)
	_ BlobStore     = (*repositories.R2BlobStore)(nil)
	_ MetadataStore = (*repositories.MetadataStore)(nil)
)
