package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/shopdrive/internal/common"
	"github.com/rohits-web03/shopdrive/internal/models"
)

func newTestStore(t *testing.T) *MetadataStore {
	return NewMetadataStore(newTestDB(t))
}

func createFile(t *testing.T, s *MetadataStore, shop, name, mime string, size int64, folder *uuid.UUID) *models.File {
	t.Helper()
	f := &models.File{
		Filename:     "key-" + name,
		OriginalName: name,
		MimeType:     mime,
		Size:         size,
		Path:         "/blobs/" + uuid.NewString() + "-" + name,
		Shop:         shop,
		FolderID:     folder,
	}
	require.NoError(t, s.CreateFile(context.Background(), f))
	return f
}

func fileIDs(files []models.File) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestCreateFile_AssignsIdentityAndTimestamps(t *testing.T) {
	s := newTestStore(t)

	f := createFile(t, s, "shop-1", "a.txt", "text/plain", 3, nil)

	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.False(t, f.CreatedAt.IsZero())
	assert.False(t, f.UpdatedAt.IsZero())

	got, err := s.GetFile(context.Background(), "shop-1", f.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", got.OriginalName)
	assert.Nil(t, got.FolderID)
}

func TestCreateFolder_Validation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateFolder(context.Background(), "shop-1", "   ")
	assert.True(t, common.IsKind(err, common.KindValidation))

	folder, err := s.CreateFolder(context.Background(), "shop-1", "  Invoices ")
	require.NoError(t, err)
	assert.Equal(t, "Invoices", folder.Name)

	dup, err := s.CreateFolder(context.Background(), "shop-1", "Invoices")
	require.NoError(t, err, "folder names are not unique")
	assert.NotEqual(t, folder.ID, dup.ID)
}

func TestTenantIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-a", "Private")
	require.NoError(t, err)
	file := createFile(t, s, "shop-a", "secret.pdf", "application/pdf", 10, &folder.ID)

	_, err = s.GetFile(ctx, "shop-b", file.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	_, err = s.GetFolder(ctx, "shop-b", folder.ID, true)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	_, err = s.UpdateFileFolder(ctx, "shop-b", file.ID, nil)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	_, err = s.RenameFolder(ctx, "shop-b", folder.ID, "Mine now")
	assert.True(t, common.IsKind(err, common.KindNotFound))

	assert.True(t, common.IsKind(s.DeleteFile(ctx, "shop-b", file.ID), common.KindNotFound))
	assert.True(t, common.IsKind(s.DeleteFolder(ctx, "shop-b", folder.ID), common.KindNotFound))

	files, err := s.ListFiles(ctx, "shop-b", FileQuery{})
	require.NoError(t, err)
	assert.Empty(t, files)

	// shop-a still sees everything untouched
	got, err := s.GetFile(ctx, "shop-a", file.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FolderID)
	assert.Equal(t, folder.ID, *got.FolderID)
}

func TestListFiles_Scopes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-1", "Docs")
	require.NoError(t, err)
	root1 := createFile(t, s, "shop-1", "root1.txt", "text/plain", 1, nil)
	inFolder := createFile(t, s, "shop-1", "doc.txt", "text/plain", 2, &folder.ID)
	root2 := createFile(t, s, "shop-1", "root2.txt", "text/plain", 3, nil)

	all, err := s.ListFiles(ctx, "shop-1", FileQuery{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{root2.ID, inFolder.ID, root1.ID}, fileIDs(all), "newest first")

	only, err := s.ListFiles(ctx, "shop-1", FileQuery{Scope: InFolder, FolderID: folder.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{inFolder.ID}, fileIDs(only))

	root, err := s.ListFiles(ctx, "shop-1", FileQuery{Scope: RootOnly})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{root2.ID, root1.ID}, fileIDs(root))
}

func TestListFiles_SearchFilterSort(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	banner := createFile(t, s, "shop-1", "Banner.PNG", "image/png", 300, nil)
	invoice := createFile(t, s, "shop-1", "invoice-march.pdf", "application/pdf", 100, nil)
	logo := createFile(t, s, "shop-1", "logo.jpg", "image/jpeg", 200, nil)

	found, err := s.ListFiles(ctx, "shop-1", FileQuery{Search: "BANNER"})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{banner.ID}, fileIDs(found))

	images, err := s.ListFiles(ctx, "shop-1", FileQuery{MimePrefix: "image/", SortBy: SortName})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{banner.ID, logo.ID}, fileIDs(images), "name sorts ascending by default")

	bySize, err := s.ListFiles(ctx, "shop-1", FileQuery{SortBy: SortSize, Order: OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{invoice.ID, logo.ID, banner.ID}, fileIDs(bySize))

	_, err = s.ListFiles(ctx, "shop-1", FileQuery{SortBy: "path"})
	assert.True(t, common.IsKind(err, common.KindValidation))

	_, err = s.ListFiles(ctx, "shop-1", FileQuery{Order: "sideways"})
	assert.True(t, common.IsKind(err, common.KindValidation))
}

func TestListFiles_SearchIsLiteral(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	createFile(t, s, "shop-1", "report.txt", "text/plain", 10, nil)
	sale := createFile(t, s, "shop-1", "50%off.txt", "text/plain", 10, nil)
	draft := createFile(t, s, "shop-1", `draft\v2.txt`, "text/x_draft", 10, nil)

	cases := []struct {
		name string
		q    FileQuery
		want []uuid.UUID
	}{
		{"percent", FileQuery{Search: "%"}, []uuid.UUID{sale.ID}},
		{"underscore", FileQuery{Search: "_"}, []uuid.UUID{}},
		{"backslash", FileQuery{Search: `\`}, []uuid.UUID{draft.ID}},
		{"mime underscore", FileQuery{MimePrefix: "text/x_"}, []uuid.UUID{draft.ID}},
		{"mime wildcard", FileQuery{MimePrefix: "text/_"}, []uuid.UUID{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := s.ListFiles(ctx, "shop-1", tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fileIDs(found))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%off`, escapeLike("50%off"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestListFolders_WithCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.CreateFolder(ctx, "shop-1", "Empty")
	require.NoError(t, err)
	full, err := s.CreateFolder(ctx, "shop-1", "Full")
	require.NoError(t, err)
	createFile(t, s, "shop-1", "a", "text/plain", 1, &full.ID)
	createFile(t, s, "shop-1", "b", "text/plain", 1, &full.ID)
	createFile(t, s, "shop-1", "c", "text/plain", 1, nil)
	_, err = s.CreateFolder(ctx, "shop-2", "Other")
	require.NoError(t, err)

	folders, err := s.ListFolders(ctx, "shop-1", FolderQuery{SortBy: SortName})
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, empty.ID, folders[0].ID)
	assert.Equal(t, int64(0), folders[0].FileCount)
	assert.Equal(t, full.ID, folders[1].ID)
	assert.Equal(t, int64(2), folders[1].FileCount)
}

func TestGetFolder_PreloadsOwnFiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-1", "Docs")
	require.NoError(t, err)
	first := createFile(t, s, "shop-1", "1.txt", "text/plain", 1, &folder.ID)
	second := createFile(t, s, "shop-1", "2.txt", "text/plain", 1, &folder.ID)

	got, err := s.GetFolder(ctx, "shop-1", folder.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second.ID, first.ID}, fileIDs(got.Files))

	bare, err := s.GetFolder(ctx, "shop-1", folder.ID, false)
	require.NoError(t, err)
	assert.Empty(t, bare.Files)
}

func TestRenameFolder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-1", "Old")
	require.NoError(t, err)

	renamed, err := s.RenameFolder(ctx, "shop-1", folder.ID, " New ")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)
	assert.True(t, renamed.UpdatedAt.After(folder.UpdatedAt))

	_, err = s.RenameFolder(ctx, "shop-1", folder.ID, "")
	assert.True(t, common.IsKind(err, common.KindValidation))

	_, err = s.RenameFolder(ctx, "shop-1", uuid.New(), "x")
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestUpdateFileFolder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-1", "Docs")
	require.NoError(t, err)
	file := createFile(t, s, "shop-1", "a.txt", "text/plain", 5, nil)

	moved, err := s.UpdateFileFolder(ctx, "shop-1", file.ID, &folder.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.FolderID)
	assert.Equal(t, folder.ID, *moved.FolderID)
	assert.True(t, moved.UpdatedAt.After(file.UpdatedAt))

	again, err := s.UpdateFileFolder(ctx, "shop-1", file.ID, &folder.ID)
	require.NoError(t, err, "moving into the current folder is idempotent")
	assert.Equal(t, folder.ID, *again.FolderID)

	toRoot, err := s.UpdateFileFolder(ctx, "shop-1", file.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, toRoot.FolderID)
	assert.Equal(t, file.Size, toRoot.Size)
	assert.Equal(t, file.Path, toRoot.Path)

	_, err = s.UpdateFileFolder(ctx, "shop-1", uuid.New(), nil)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestDeleteFile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	file := createFile(t, s, "shop-1", "a.txt", "text/plain", 5, nil)

	require.NoError(t, s.DeleteFile(ctx, "shop-1", file.ID))

	_, err := s.GetFile(ctx, "shop-1", file.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound))
	assert.True(t, common.IsKind(s.DeleteFile(ctx, "shop-1", file.ID), common.KindNotFound))
}

func TestDeleteFolder_CascadesFiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	folder, err := s.CreateFolder(ctx, "shop-1", "Invoices")
	require.NoError(t, err)
	createFile(t, s, "shop-1", "a.pdf", "application/pdf", 1, &folder.ID)
	createFile(t, s, "shop-1", "b.pdf", "application/pdf", 1, &folder.ID)
	keep := createFile(t, s, "shop-1", "keep.pdf", "application/pdf", 1, nil)

	require.NoError(t, s.DeleteFolder(ctx, "shop-1", folder.ID))

	_, err = s.GetFolder(ctx, "shop-1", folder.ID, false)
	assert.True(t, common.IsKind(err, common.KindNotFound))

	orphans, err := s.ListFiles(ctx, "shop-1", FileQuery{Scope: InFolder, FolderID: folder.ID})
	require.NoError(t, err)
	assert.Empty(t, orphans)

	var dangling int64
	require.NoError(t, s.db.Model(&models.File{}).Where("folder_id = ?", folder.ID).Count(&dangling).Error)
	assert.Zero(t, dangling)

	rest, err := s.ListFiles(ctx, "shop-1", FileQuery{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{keep.ID}, fileIDs(rest))

	assert.True(t, common.IsKind(s.DeleteFolder(ctx, "shop-1", folder.ID), common.KindNotFound))
}
