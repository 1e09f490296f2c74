package repositories

import (
	"context"
	"strings"

	errors "github.com/Laisky/errors/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/models"
)

// FolderScope restricts a file listing by folder.
type FolderScope int

const (
	AllFiles FolderScope = iota
	InFolder
	RootOnly
)

const (
	SortCreatedAt = "createdAt"
	SortUpdatedAt = "updatedAt"
	SortName      = "name"
	SortSize      = "size"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var fileSortColumns = map[string]string{
	SortCreatedAt: "created_at",
	SortUpdatedAt: "updated_at",
	SortName:      "original_name",
	SortSize:      "size",
}

var folderSortColumns = map[string]string{
	SortCreatedAt: "created_at",
	SortUpdatedAt: "updated_at",
	SortName:      "name",
}

// FileQuery filters and orders a file listing. The zero value lists every
// file of the shop, newest first.
type FileQuery struct {
	Scope      FolderScope
	FolderID   uuid.UUID // used with InFolder
	Search     string    // case-insensitive substring of the original name
	MimePrefix string    // e.g. "image/"
	SortBy     string
	Order      string // asc, desc or empty for the column default
}

// FolderQuery orders a folder listing. The zero value sorts newest first.
type FolderQuery struct {
	SortBy string
	Order  string
}

type folderFileCount struct {
	FolderID uuid.UUID
	Count    int64
}

// MetadataStore persists File and Folder records. Every method is scoped by
// shop; records of another shop behave as if they did not exist.
type MetadataStore struct {
	db *gorm.DB
}

func NewMetadataStore(db *gorm.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

// ListFiles returns the shop's files matching q.
func (s *MetadataStore) ListFiles(ctx context.Context, shop string, q FileQuery) ([]models.File, error) {
	order, err := orderBy(fileSortColumns, q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Where("shop = ?", shop)
	switch q.Scope {
	case InFolder:
		tx = tx.Where("folder_id = ?", q.FolderID)
	case RootOnly:
		tx = tx.Where("folder_id IS NULL")
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		tx = tx.Where(`LOWER(original_name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(search))+"%")
	}
	if prefix := strings.TrimSpace(q.MimePrefix); prefix != "" {
		tx = tx.Where(`mime_type LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")
	}

	files := []models.File{}
	if err := tx.Order(order).Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&files).Error; err != nil {
		return nil, common.Store(err, "Failed to list files")
	}
	return files, nil
}

// ListFolders returns the shop's folders with the number of files in each.
func (s *MetadataStore) ListFolders(ctx context.Context, shop string, q FolderQuery) ([]models.FolderSummary, error) {
	order, err := orderBy(folderSortColumns, q.SortBy, q.Order)
	if err != nil {
		return nil, err
	}

	var folders []models.Folder
	if err := s.db.WithContext(ctx).
		Where("shop = ?", shop).
		Order(order).
		Find(&folders).Error; err != nil {
		return nil, common.Store(err, "Failed to list folders")
	}

	var counts []folderFileCount
	if err := s.db.WithContext(ctx).Model(&models.File{}).
		Select("folder_id, COUNT(*) AS count").
		Where("shop = ? AND folder_id IS NOT NULL", shop).
		Group("folder_id").
		Scan(&counts).Error; err != nil {
		return nil, common.Store(err, "Failed to count folder files")
	}
	byFolder := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byFolder[c.FolderID] = c.Count
	}

	summaries := make([]models.FolderSummary, 0, len(folders))
	for _, f := range folders {
		summaries = append(summaries, models.FolderSummary{Folder: f, FileCount: byFolder[f.ID]})
	}
	return summaries, nil
}

func (s *MetadataStore) GetFile(ctx context.Context, shop string, id uuid.UUID) (*models.File, error) {
	var file models.File
	err := s.db.WithContext(ctx).Where("id = ? AND shop = ?", id, shop).First(&file).Error
	if err != nil {
		return nil, lookupError(err, "File not found")
	}
	return &file, nil
}

// GetFolder loads a folder, with its files (newest first) when withFiles is set.
func (s *MetadataStore) GetFolder(ctx context.Context, shop string, id uuid.UUID, withFiles bool) (*models.Folder, error) {
	tx := s.db.WithContext(ctx)
	if withFiles {
		tx = tx.Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Where("shop = ?", shop).Order("created_at DESC")
		})
	}

	var folder models.Folder
	if err := tx.Where("id = ? AND shop = ?", id, shop).First(&folder).Error; err != nil {
		return nil, lookupError(err, "Folder not found")
	}
	return &folder, nil
}

// CreateFile inserts file, assigning its id and timestamps.
func (s *MetadataStore) CreateFile(ctx context.Context, file *models.File) error {
	if err := s.db.WithContext(ctx).Create(file).Error; err != nil {
		return common.Store(err, "Failed to save file record")
	}
	return nil
}

func (s *MetadataStore) CreateFolder(ctx context.Context, shop, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Validation("Folder name is required")
	}

	folder := models.Folder{Name: name, Shop: shop}
	if err := s.db.WithContext(ctx).Create(&folder).Error; err != nil {
		return nil, common.Store(err, "Failed to create folder")
	}
	return &folder, nil
}

func (s *MetadataStore) RenameFolder(ctx context.Context, shop string, id uuid.UUID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Validation("Folder name is required")
	}

	res := s.db.WithContext(ctx).Model(&models.Folder{}).
		Where("id = ? AND shop = ?", id, shop).
		Update("name", name)
	if res.Error != nil {
		return nil, common.Store(res.Error, "Failed to rename folder")
	}
	if res.RowsAffected == 0 {
		return nil, common.NotFound("Folder not found")
	}
	return s.GetFolder(ctx, shop, id, false)
}

// UpdateFileFolder points the file at target, or at the root when target is nil.
func (s *MetadataStore) UpdateFileFolder(ctx context.Context, shop string, id uuid.UUID, target *uuid.UUID) (*models.File, error) {
	var value any = gorm.Expr("NULL")
	if target != nil {
		value = *target
	}

	res := s.db.WithContext(ctx).Model(&models.File{}).
		Where("id = ? AND shop = ?", id, shop).
		Update("folder_id", value)
	if res.Error != nil {
		return nil, common.Store(res.Error, "Failed to move file")
	}
	if res.RowsAffected == 0 {
		return nil, common.NotFound("File not found")
	}
	return s.GetFile(ctx, shop, id)
}

func (s *MetadataStore) DeleteFile(ctx context.Context, shop string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ? AND shop = ?", id, shop).Delete(&models.File{})
	if res.Error != nil {
		return common.Store(res.Error, "Failed to delete file record")
	}
	if res.RowsAffected == 0 {
		return common.NotFound("File not found")
	}
	return nil
}

// DeleteFolder removes the folder and every file record inside it.
func (s *MetadataStore) DeleteFolder(ctx context.Context, shop string, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ? AND shop = ?", id, shop).Delete(&models.File{}).Error; err != nil {
			return common.Store(err, "Failed to delete folder files")
		}

		res := tx.Where("id = ? AND shop = ?", id, shop).Delete(&models.Folder{})
		if res.Error != nil {
			return common.Store(res.Error, "Failed to delete folder")
		}
		if res.RowsAffected == 0 {
			return common.NotFound("Folder not found")
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern escaped with '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func lookupError(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NotFound(notFound)
	}
	return common.Store(err, "Database query failed")
}

func orderBy(columns map[string]string, sortBy, order string) (clause.OrderByColumn, error) {
	if sortBy == "" {
		sortBy = SortCreatedAt
	}
	column, ok := columns[sortBy]
	if !ok {
		return clause.OrderByColumn{}, common.Validation("Unsupported sort field: " + sortBy)
	}

	var desc bool
	switch strings.ToLower(order) {
	case "":
		// names read naturally A-Z, everything else newest/largest first
		desc = sortBy != SortName
	case OrderAsc:
	case OrderDesc:
		desc = true
	default:
		return clause.OrderByColumn{}, common.Validation("Unsupported sort order: " + order)
	}
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}, nil
}
