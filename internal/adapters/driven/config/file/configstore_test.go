package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("test_key", "test_value")
	require.NoError(t, err)

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("string_key", "hello world")
	require.NoError(t, err)

	val := store.GetString("string_key")
	assert.Equal(t, "hello world", val)

	// Non-existent key
	val = store.GetString("nonexistent")
	assert.Equal(t, "", val)

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	val = store.GetString("int_key")
	assert.Equal(t, "", val)
}

func TestConfigStore_PersistsAcrossReload(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyAPIBaseURL, "http://localhost:8080"))
	require.NoError(t, store.Set(KeyTimeoutMs, 5000))
	require.NoError(t, store.Set(KeyVerbose, true))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", reloaded.GetString(KeyAPIBaseURL))
	assert.Equal(t, 5000, reloaded.GetInt(KeyTimeoutMs))
	assert.True(t, reloaded.GetBool(KeyVerbose))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[api]
base_url = "http://example.test"
timeout_ms = 2500

[log]
verbose = true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test", store.GetString("api.base_url"))
	assert.Equal(t, 2500, store.GetInt("api.timeout_ms"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestResolveSettings_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	s := ResolveSettings(store)

	assert.Equal(t, DefaultAPIBaseURL, s.APIBaseURL)
	assert.Equal(t, DefaultCivicBaseURL, s.CivicBaseURL)
	assert.Zero(t, s.Timeout)
	assert.Empty(t, s.DataDir)
	assert.False(t, s.Verbose)
}

func TestResolveSettings_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyAPIBaseURL, "http://localhost:3000"))
	require.NoError(t, store.Set(KeyTimeoutMs, 1500))
	require.NoError(t, store.Set(KeyDataDir, "/tmp/brado-data"))

	s := ResolveSettings(store)

	assert.Equal(t, "http://localhost:3000", s.APIBaseURL)
	assert.Equal(t, 1500*time.Millisecond, s.Timeout)
	assert.Equal(t, "/tmp/brado-data", s.DataDir)
}
