package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "TensorFlow", cfg.Name)
	assert.Equal(t, "light", cfg.Color)
	assert.Equal(t, "log", cfg.Navigation)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	require.NoError(t, os.WriteFile(path, []byte("color: dark\nnavigation: route\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Color)
	assert.Equal(t, "route", cfg.Navigation)
	assert.Equal(t, ":8000", cfg.Addr)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	require.NoError(t, os.WriteFile(path, []byte("color: dark\n"), 0o644))
	t.Setenv("DASHBOARD_COLOR", "light")
	t.Setenv("DASHBOARD_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Color)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	require.NoError(t, os.WriteFile(path, []byte("color: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	cfg := DefaultConfig()
	cfg.Name = "Metrics"
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "chartreuse"
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Navigation = "teleport"
	assert.ErrorContains(t, cfg.Validate(), "navigation")

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "log_level")

	cfg = DefaultConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())
}
