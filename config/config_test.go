package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tutorial.db", cfg.DatabasePath)
	assert.Equal(t, "smart-autoclicker", cfg.AppName)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TUTORIAL_DB_PATH", "/tmp/t.db")
	t.Setenv("TUTORIAL_CATALOG_PATH", "/tmp/catalog.yaml")
	t.Setenv("TUTORIAL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/t.db", cfg.DatabasePath)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
