package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func newTestStore(t *testing.T) *LocalFileStore {
	t.Helper()

	store, err := NewLocalFileStore(config.StorageConfig{
		AttachmentDir:  t.TempDir(),
		PublicBasePath: "/arquivos",
	}, logger.NewLogger())
	require.NoError(t, err)
	return store
}

func TestLocalFileStore_StoreAndRemove(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Store(context.Background(), ticketusecases.FileUpload{
		FileName: "relatório.PDF",
		Size:     9,
		Reader:   strings.NewReader("pdf-bytes"),
	})
	require.NoError(t, err)

	// Server-generated name keeps only the extension, lowercased.
	assert.True(t, strings.HasSuffix(stored.StoredName, ".pdf"))
	assert.NotContains(t, stored.StoredName, "relatório")
	assert.Equal(t, "/arquivos/"+stored.StoredName, stored.Link)

	data, err := os.ReadFile(filepath.Join(store.Dir(), stored.StoredName))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, store.Remove(context.Background(), stored.StoredName))
	_, err = os.Stat(filepath.Join(store.Dir(), stored.StoredName))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStore_RemoveMissingIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Remove(context.Background(), "nope.png"))
}

func TestLocalFileStore_RemoveRejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)
	require.Error(t, store.Remove(context.Background(), "../etc/passwd"))
	require.Error(t, store.Remove(context.Background(), ""))
}

func TestLocalFileStore_UniqueStoredNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Store(context.Background(), ticketusecases.FileUpload{
		FileName: "foto.png", Size: 1, Reader: strings.NewReader("a"),
	})
	require.NoError(t, err)

	second, err := store.Store(context.Background(), ticketusecases.FileUpload{
		FileName: "foto.png", Size: 1, Reader: strings.NewReader("b"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.StoredName, second.StoredName)
}
