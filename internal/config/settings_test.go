package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.False(t, settings.DarkMode)
	assert.Empty(t, settings.APIKey)
}

func TestFileStore_Path(t *testing.T) {
	store := NewFileStore("/base", zerolog.Nop())

	assert.Equal(t, filepath.Join("/base", "headlines", "headlines.toml"), store.Path("headlines"))
}

func TestFileStore_LoadMissingReturnsDefaults(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())

	settings := store.Load("headlines")

	assert.Equal(t, DefaultSettings(), settings)
}

func TestFileStore_StoreAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, zerolog.Nop())

	err := store.Store("headlines", Settings{DarkMode: true, APIKey: "abc123"})
	require.NoError(t, err)

	info, err := os.Stat(store.Path("headlines"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(SettingsFilePermissions), info.Mode().Perm())

	loaded := NewFileStore(dir, zerolog.Nop()).Load("headlines")
	assert.Equal(t, Settings{DarkMode: true, APIKey: "abc123"}, loaded)
}

func TestFileStore_StoreOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())

	require.NoError(t, store.Store("headlines", Settings{DarkMode: true, APIKey: "first"}))
	require.NoError(t, store.Store("headlines", Settings{DarkMode: false, APIKey: "second"}))

	assert.Equal(t, Settings{DarkMode: false, APIKey: "second"}, store.Load("headlines"))
}

func TestFileStore_KeyedByAppName(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())

	require.NoError(t, store.Store("headlines", Settings{APIKey: "one"}))

	assert.Equal(t, DefaultSettings(), store.Load("other-app"))
	assert.Equal(t, "one", store.Load("headlines").APIKey)
}

func TestFileStore_LoadCorruptReturnsDefaults(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())
	path := store.Path("headlines")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("dark_mode = = [not toml"), 0o600))

	settings := store.Load("headlines")

	assert.Equal(t, DefaultSettings(), settings)
}

func TestFileStore_LoadPartialFileKeepsDefaults(t *testing.T) {
	store := NewFileStore(t.TempDir(), zerolog.Nop())
	path := store.Path("headlines")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("api_key = \"only-key\"\n"), 0o600))

	settings := store.Load("headlines")

	assert.Equal(t, Settings{DarkMode: false, APIKey: "only-key"}, settings)
}

func TestFileStore_StoreUnwritable(t *testing.T) {
	// A regular file as base directory makes the settings directory impossible to create.
	base := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o600))
	store := NewFileStore(base, zerolog.Nop())

	err := store.Store("headlines", Settings{APIKey: "abc123"})

	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), store.Load("headlines"))
}
