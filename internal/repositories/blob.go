package repositories

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/utils"
)

// LocalBlobStore keeps blobs as files under a single root directory.
type LocalBlobStore struct {
	root string
}

func NewLocalBlobStore(root string) (*LocalBlobStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, common.IO(err, "Invalid upload directory")
	}
	return &LocalBlobStore{root: abs}, nil
}

// Root returns the absolute storage directory.
func (s *LocalBlobStore) Root() string {
	return s.root
}

// EnsureReady creates the storage root if missing. Safe to call concurrently.
func (s *LocalBlobStore) EnsureReady(context.Context) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return common.IO(err, "Failed to prepare upload directory")
	}
	return nil
}

// Write stores data under a freshly generated key and returns its path.
// Nothing is left on disk when the write fails.
func (s *LocalBlobStore) Write(_ context.Context, originalName string, data []byte) (string, error) {
	key, err := utils.GenerateStorageKey(originalName)
	if err != nil {
		return "", common.IO(err, "Failed to generate storage key")
	}
	path := filepath.Join(s.root, key)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", common.IO(err, "Failed to store file")
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", common.IO(err, "Failed to store file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", common.IO(err, "Failed to store file")
	}
	return path, nil
}

func (s *LocalBlobStore) Read(_ context.Context, path string) ([]byte, error) {
	full, ok := s.resolve(path)
	if !ok {
		return nil, common.NotFound("File not found on disk")
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFound("File not found on disk")
		}
		return nil, common.IO(err, "Failed to read file")
	}
	return data, nil
}

func (s *LocalBlobStore) Exists(_ context.Context, path string) (bool, error) {
	full, ok := s.resolve(path)
	if !ok {
		return false, nil
	}
	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, common.IO(err, "Failed to check file")
	}
	return !info.IsDir(), nil
}

// Delete removes the blob. A missing blob is not an error.
func (s *LocalBlobStore) Delete(_ context.Context, path string) error {
	full, ok := s.resolve(path)
	if !ok {
		return nil
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return common.IO(err, "Failed to delete file")
	}
	return nil
}

// resolve maps a stored path to an absolute path inside the root.
func (s *LocalBlobStore) resolve(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(s.root, full)
	}
	full = filepath.Clean(full)

	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
