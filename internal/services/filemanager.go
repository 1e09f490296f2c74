// Package services sequences the blob store and the metadata store into the
// file manager operations. It keeps no state of its own; every call takes
// the tenant explicitly.
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/models"
	"github.com/rohits-web03/shopdrive/internal/repositories"
)

const defaultBulkWorkers = 4

// FileManager implements upload, browse, move, delete and download for
// every shop.
type FileManager struct {
	meta        MetadataStore
	blobs       BlobStore
	logger      *zap.Logger
	bulkWorkers int
}

type Option func(*FileManager)

// WithBulkWorkers bounds how many items a bulk operation processes at once.
func WithBulkWorkers(n int) Option {
	return func(m *FileManager) {
		if n > 0 {
			m.bulkWorkers = n
		}
	}
}

func NewFileManager(meta MetadataStore, blobs BlobStore, logger *zap.Logger, opts ...Option) *FileManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &FileManager{
		meta:        meta,
		blobs:       blobs,
		logger:      logger.Named("filemanager"),
		bulkWorkers: defaultBulkWorkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// UploadInput is a file received from a client.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Data         []byte // nil means no file; an empty slice is a zero-byte file
	FolderID     *uuid.UUID
}

// Upload writes the blob first and records metadata only once the bytes are
// on disk. A metadata failure after the write leaves an orphaned blob.
func (m *FileManager) Upload(ctx context.Context, shop string, in UploadInput) (*models.File, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	if in.Data == nil {
		return nil, common.Validation("No file provided")
	}
	name := strings.TrimSpace(in.OriginalName)
	if name == "" {
		return nil, common.Validation("File name is required")
	}
	if in.FolderID != nil {
		if _, err := m.meta.GetFolder(ctx, shop, *in.FolderID, false); err != nil {
			return nil, err
		}
	}
	mimeType := strings.TrimSpace(in.MimeType)
	if mimeType == "" {
		mimeType = models.DefaultMimeType
	}

	if err := m.blobs.EnsureReady(ctx); err != nil {
		return nil, err
	}
	path, err := m.blobs.Write(ctx, name, in.Data)
	if err != nil {
		m.logger.Error("blob write failed", zap.String("shop", shop), zap.String("name", name), zap.Error(err))
		return nil, err
	}

	file := &models.File{
		Filename:     storedName(path),
		OriginalName: name,
		MimeType:     mimeType,
		Size:         int64(len(in.Data)),
		Path:         path,
		Shop:         shop,
		FolderID:     in.FolderID,
	}
	if err := m.meta.CreateFile(ctx, file); err != nil {
		m.logger.Error("file record not created, blob left orphaned",
			zap.String("shop", shop), zap.String("path", path), zap.Error(err))
		return nil, err
	}

	m.logger.Info("file uploaded",
		zap.String("shop", shop), zap.Stringer("file_id", file.ID), zap.Int64("size", file.Size))
	return file, nil
}

func (m *FileManager) ListFiles(ctx context.Context, shop string, q repositories.FileQuery) ([]models.File, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.ListFiles(ctx, shop, q)
}

func (m *FileManager) ListFolders(ctx context.Context, shop string, q repositories.FolderQuery) ([]models.FolderSummary, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.ListFolders(ctx, shop, q)
}

func (m *FileManager) GetFile(ctx context.Context, shop string, id uuid.UUID) (*models.File, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.GetFile(ctx, shop, id)
}

// GetFolder returns the folder together with its files.
func (m *FileManager) GetFolder(ctx context.Context, shop string, id uuid.UUID) (*models.Folder, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.GetFolder(ctx, shop, id, true)
}

func (m *FileManager) CreateFolder(ctx context.Context, shop, name string) (*models.Folder, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.CreateFolder(ctx, shop, name)
}

func (m *FileManager) RenameFolder(ctx context.Context, shop string, id uuid.UUID, name string) (*models.Folder, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	return m.meta.RenameFolder(ctx, shop, id, name)
}

// DeleteFile removes the blob (best effort) and then the record.
func (m *FileManager) DeleteFile(ctx context.Context, shop string, id uuid.UUID) error {
	_, err := m.deleteFile(ctx, shop, id)
	return err
}

// deleteFile reports whether the blob cleanup succeeded alongside the result.
func (m *FileManager) deleteFile(ctx context.Context, shop string, id uuid.UUID) (blobCleaned bool, err error) {
	if err := requireShop(shop); err != nil {
		return false, err
	}
	file, err := m.meta.GetFile(ctx, shop, id)
	if err != nil {
		return false, err
	}

	blobCleaned = m.removeBlob(ctx, shop, file)
	if err := m.meta.DeleteFile(ctx, shop, id); err != nil {
		return blobCleaned, err
	}

	m.logger.Info("file deleted", zap.String("shop", shop), zap.Stringer("file_id", id))
	return blobCleaned, nil
}

// DeleteFolder removes every owned blob independently (best effort) and then
// the folder, whose deletion cascades to the file records.
func (m *FileManager) DeleteFolder(ctx context.Context, shop string, id uuid.UUID) error {
	_, err := m.deleteFolder(ctx, shop, id)
	return err
}

func (m *FileManager) deleteFolder(ctx context.Context, shop string, id uuid.UUID) (blobFailures int, err error) {
	if err := requireShop(shop); err != nil {
		return 0, err
	}
	folder, err := m.meta.GetFolder(ctx, shop, id, true)
	if err != nil {
		return 0, err
	}

	for i := range folder.Files {
		if !m.removeBlob(ctx, shop, &folder.Files[i]) {
			blobFailures++
		}
	}
	if err := m.meta.DeleteFolder(ctx, shop, id); err != nil {
		return blobFailures, err
	}

	m.logger.Info("folder deleted",
		zap.String("shop", shop), zap.Stringer("folder_id", id),
		zap.Int("files", len(folder.Files)), zap.Int("blob_failures", blobFailures))
	return blobFailures, nil
}

// MoveFile points the file at target, or at the root when target is nil.
// The blob is never touched.
func (m *FileManager) MoveFile(ctx context.Context, shop string, id uuid.UUID, target *uuid.UUID) (*models.File, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	if err := m.checkTarget(ctx, shop, target); err != nil {
		return nil, err
	}
	return m.moveFile(ctx, shop, id, target)
}

func (m *FileManager) moveFile(ctx context.Context, shop string, id uuid.UUID, target *uuid.UUID) (*models.File, error) {
	file, err := m.meta.GetFile(ctx, shop, id)
	if err != nil {
		return nil, err
	}
	if file.InFolder(target) {
		return file, nil
	}
	return m.meta.UpdateFileFolder(ctx, shop, id, target)
}

// checkTarget rejects folders that do not belong to the shop.
func (m *FileManager) checkTarget(ctx context.Context, shop string, target *uuid.UUID) error {
	if target == nil {
		return nil
	}
	if _, err := m.meta.GetFolder(ctx, shop, *target, false); err != nil {
		if common.IsKind(err, common.KindNotFound) {
			return common.NotFound("Target folder not found")
		}
		return err
	}
	return nil
}

// Download is a file's bytes together with what a client needs to save them.
type Download struct {
	File    *models.File
	Content []byte
}

// Download returns the stored bytes of the shop's file. A missing record and
// a missing blob are both NotFound.
func (m *FileManager) Download(ctx context.Context, shop string, id uuid.UUID) (*Download, error) {
	if err := requireShop(shop); err != nil {
		return nil, err
	}
	file, err := m.meta.GetFile(ctx, shop, id)
	if err != nil {
		return nil, err
	}

	ok, err := m.blobs.Exists(ctx, file.Path)
	if err != nil {
		return nil, err
	}
	if !ok {
		m.logger.Warn("file record without blob", zap.String("shop", shop), zap.Stringer("file_id", id))
		return nil, common.NotFound("File not found on disk")
	}

	data, err := m.blobs.Read(ctx, file.Path)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != file.Size {
		m.logger.Warn("stored blob size differs from record",
			zap.String("shop", shop), zap.Stringer("file_id", id),
			zap.Int64("recorded", file.Size), zap.Int("stored", len(data)))
	}
	return &Download{File: file, Content: data}, nil
}

// removeBlob deletes the file's blob and logs, rather than returns, failures.
func (m *FileManager) removeBlob(ctx context.Context, shop string, file *models.File) bool {
	if err := m.blobs.Delete(ctx, file.Path); err != nil {
		m.logger.Warn("blob cleanup failed",
			zap.String("shop", shop), zap.Stringer("file_id", file.ID), zap.Error(err))
		return false
	}
	return true
}

func requireShop(shop string) error {
	if strings.TrimSpace(shop) == "" {
		return common.Validation("Shop is required")
	}
	return nil
}

// storedName is the last element of a blob path.
func storedName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
