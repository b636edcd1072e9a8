package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "giftpanner.db", cfg.Storage.Path)
	assert.Equal(t, "embedded", cfg.Catalog.Source)
	assert.False(t, cfg.AllowProfileReset)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DRIVER=Redis\nREDIS_ADDR=localhost:6379\nAPP_PORT=9090\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STORAGE_DRIVER")
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("APP_PORT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadRejectsIncompleteBackends(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err := Load(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("STORAGE_DRIVER", "floppy")
	_, err = Load(filepath.Join(t.TempDir(), "none.env"))
	require.Error(t, err)
}

func TestCatalogFallsBackToStorageDatabase(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/giftpanner")
	t.Setenv("CATALOG_SOURCE", "postgres")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/giftpanner", cfg.Catalog.DatabaseURL)
}
