package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_EmptyDirectory(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_SetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("cache.capacity", 10))
	require.NoError(t, store.Set("data.dir", "/var/folio"))

	// A fresh store reads the values back from disk.
	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, reloaded.GetInt("cache.capacity"))
	assert.Equal(t, "/var/folio", reloaded.GetString("data.dir"))
}

func TestConfigStore_NestedTablesFlattened(t *testing.T) {
	dir := t.TempDir()
	content := "[cache]\ncapacity = 7\n\n[data]\ndir = \"/tmp/books\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 7, store.GetInt("cache.capacity"))
	assert.Equal(t, "/tmp/books", store.GetString("data.dir"))
}

func TestConfigStore_TypeMismatchesAreZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "a string"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Equal(t, "a string", store.GetString("key"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
