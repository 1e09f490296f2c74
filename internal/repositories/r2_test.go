package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/config"
)

// fakeS3 is a path-style object store good enough for Put/Get/Delete.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(body)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestR2(t *testing.T) (*R2BlobStore, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewR2BlobStore(config.R2Config{
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketName:      "shop-files",
		Region:          "auto",
		Endpoint:        srv.URL,
		KeyPrefix:       "uploads/",
	})
	require.NoError(t, err)
	return s, fake
}

func TestNewR2BlobStore_RequiresBucketAndEndpoint(t *testing.T) {
	_, err := NewR2BlobStore(config.R2Config{})
	assert.Error(t, err)

	_, err = NewR2BlobStore(config.R2Config{BucketName: "b"})
	assert.Error(t, err)

	_, err = NewR2BlobStore(config.R2Config{BucketName: "b", AccountID: "acc"})
	assert.NoError(t, err)
}

func TestR2BlobStore_WriteReadDelete(t *testing.T) {
	ctx := context.Background()
	s, fake := newTestR2(t)

	key, err := s.Write(ctx, "invoice.pdf", []byte("0123456789"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "-invoice.pdf"))

	fake.mu.Lock()
	assert.Equal(t, []byte("0123456789"), fake.objects["/shop-files/"+key])
	fake.mu.Unlock()

	data, err := s.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))

	_, err = s.Read(ctx, key)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}
