package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/shopdrive/internal/repositories"
)

type fixture struct {
	meta    *repositories.MetadataStore
	blobs   *repositories.LocalBlobStore
	manager *FileManager
}

func tickingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newTestMetadata(t *testing.T) *repositories.MetadataStore {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc-%s-%d?mode=memory&cache=shared", name, time.Now().UTC().UnixNano())
	db, err := repositories.Open("sqlite", dsn, &gorm.Config{
		NowFunc: tickingClock(),
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repositories.Migrate(db))
	return repositories.NewMetadataStore(db)
}

// newFixture wires a file manager over sqlite and a temp-dir blob store.
// The uploads directory is created lazily by the first upload.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	meta := newTestMetadata(t)
	blobs, err := repositories.NewLocalBlobStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return &fixture{
		meta:    meta,
		blobs:   blobs,
		manager: NewFileManager(meta, blobs, zap.NewNop(), WithBulkWorkers(3)),
	}
}

func (f *fixture) upload(t *testing.T, shop, name, body string) string {
	t.Helper()
	file, err := f.manager.Upload(context.Background(), shop, UploadInput{
		OriginalName: name,
		MimeType:     "text/plain",
		Data:         []byte(body),
	})
	require.NoError(t, err)
	return file.ID.String()
}
