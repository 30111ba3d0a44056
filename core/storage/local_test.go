package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadcache/core/storage"
)

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")

	_, err := storage.NewLocal(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestNewLocal_EmptyDir(t *testing.T) {
	_, err := storage.NewLocal("")

	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestLocal_StoreFetchRoundTrip(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	name := "20240102-0304-555-0042/photo.jpg"
	require.NoError(t, local.Store(context.Background(), name, bytes.NewReader([]byte("0123456789"))))

	rc, err := local.Fetch(context.Background(), name)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789"), data)
}

func TestLocal_StoreOverwrites(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	name := "id/entry.txt"
	require.NoError(t, local.Store(context.Background(), name, bytes.NewReader([]byte("first"))))
	require.NoError(t, local.Store(context.Background(), name, bytes.NewReader([]byte("second"))))

	rc, err := local.Fetch(context.Background(), name)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestLocal_StoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocal(dir)
	require.NoError(t, err)

	require.NoError(t, local.Store(context.Background(), "id/f.txt", bytes.NewReader([]byte("x"))))

	entries, err := os.ReadDir(filepath.Join(dir, "id"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.txt", entries[0].Name())
}

func TestLocal_FetchMissing(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = local.Fetch(context.Background(), "id/missing.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestLocal_Exists(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.False(t, local.Exists(context.Background(), "id/f.txt"))

	require.NoError(t, local.Store(context.Background(), "id/f.txt", bytes.NewReader([]byte("x"))))

	assert.True(t, local.Exists(context.Background(), "id/f.txt"))
}

func TestLocal_RejectsUnsafeNames(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	unsafe := []string{"", "/abs/path", "id/../../escape"}
	for _, name := range unsafe {
		err := local.Store(context.Background(), name, bytes.NewReader(nil))
		require.Error(t, err, "name=%q", name)
		assert.ErrorIs(t, err, storage.ErrInvalidName, "name=%q", name)

		assert.False(t, local.Exists(context.Background(), name), "name=%q", name)
	}
}

func TestLocal_CanceledContext(t *testing.T) {
	local, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, local.Store(ctx, "id/f.txt", bytes.NewReader(nil)))
	_, err = local.Fetch(ctx, "id/f.txt")
	assert.Error(t, err)
	assert.False(t, local.Exists(ctx, "id/f.txt"))
}
