package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/shopdrive/internal/common"
)

// ItemType tells a bulk delete whether an id names a file or a folder.
type ItemType string

const (
	ItemFile   ItemType = "file"
	ItemFolder ItemType = "folder"
)

// BulkItem is one entry of a bulk delete request.
type BulkItem struct {
	ID   uuid.UUID `json:"id"`
	Type ItemType  `json:"type"`
}

// ItemResult is the outcome for one bulk item. A failed item never stops
// the others.
type ItemResult struct {
	ID      uuid.UUID `json:"id"`
	Type    ItemType  `json:"type"`
	OK      bool      `json:"ok"`
	Error   string    `json:"error,omitempty"`
	Warning string    `json:"warning,omitempty"`
}

// BulkResult aggregates per-item outcomes. The operation itself succeeded
// once every item has been attempted.
type BulkResult struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Items     []ItemResult `json:"items"`
}

func newBulkResult(items []ItemResult) BulkResult {
	res := BulkResult{Items: items}
	for _, it := range items {
		if it.OK {
			res.Succeeded++
		} else {
			res.Failed++
		}
	}
	return res
}

// BulkDelete deletes a mixed set of files and folders. Files go first so a
// file listed alongside its own folder is not raced by the folder cascade.
func (m *FileManager) BulkDelete(ctx context.Context, shop string, items []BulkItem) (BulkResult, error) {
	if err := requireShop(shop); err != nil {
		return BulkResult{}, err
	}
	if len(items) == 0 {
		return BulkResult{}, common.Validation("No items selected")
	}

	results := make([]ItemResult, len(items))
	var files, folders []int
	for i, it := range items {
		results[i] = ItemResult{ID: it.ID, Type: it.Type}
		switch it.Type {
		case ItemFile:
			files = append(files, i)
		case ItemFolder:
			folders = append(folders, i)
		default:
			results[i].Error = "Unknown item type"
		}
	}

	m.forEach(ctx, files, func(ctx context.Context, i int) {
		cleaned, err := m.deleteFile(ctx, shop, items[i].ID)
		results[i] = m.itemResult(shop, items[i], err)
		if err == nil && !cleaned {
			results[i].Warning = "File deleted but its content could not be removed"
		}
	})
	m.forEach(ctx, folders, func(ctx context.Context, i int) {
		failures, err := m.deleteFolder(ctx, shop, items[i].ID)
		results[i] = m.itemResult(shop, items[i], err)
		if err == nil && failures > 0 {
			results[i].Warning = "Folder deleted but some file contents could not be removed"
		}
	})

	return newBulkResult(results), nil
}

// BulkMove moves every file into target (nil = root). The target is checked
// once; an invalid target fails the whole request.
func (m *FileManager) BulkMove(ctx context.Context, shop string, ids []uuid.UUID, target *uuid.UUID) (BulkResult, error) {
	if err := requireShop(shop); err != nil {
		return BulkResult{}, err
	}
	if len(ids) == 0 {
		return BulkResult{}, common.Validation("No files selected")
	}
	if err := m.checkTarget(ctx, shop, target); err != nil {
		return BulkResult{}, err
	}

	results := make([]ItemResult, len(ids))
	idx := make([]int, len(ids))
	for i := range ids {
		idx[i] = i
	}
	m.forEach(ctx, idx, func(ctx context.Context, i int) {
		_, err := m.moveFile(ctx, shop, ids[i], target)
		results[i] = m.itemResult(shop, BulkItem{ID: ids[i], Type: ItemFile}, err)
	})

	return newBulkResult(results), nil
}

// forEach runs fn for every index on at most bulkWorkers goroutines.
func (m *FileManager) forEach(ctx context.Context, idx []int, fn func(ctx context.Context, i int)) {
	var g errgroup.Group
	g.SetLimit(m.bulkWorkers)
	for _, i := range idx {
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}

func (m *FileManager) itemResult(shop string, item BulkItem, err error) ItemResult {
	res := ItemResult{ID: item.ID, Type: item.Type, OK: err == nil}
	if err != nil {
		res.Error = common.PublicMessage(err)
		m.logger.Warn("bulk item failed",
			zap.String("shop", shop), zap.String("type", string(item.Type)),
			zap.Stringer("id", item.ID), zap.Error(err))
	}
	return res
}
