package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Engine.IgnoreCase)
	assert.Empty(t, cfg.Engine.Delimiters)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ftsearch.yaml")
	data := []byte(`
engine:
  ignoreCase: true
  delimiters: [",", "'"]
  strictQueries: true
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Engine.IgnoreCase)
	assert.Equal(t, []string{",", "'"}, cfg.Engine.Delimiters)
	assert.True(t, cfg.Engine.StrictQueries)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FT_ENGINE_IGNORE_CASE", "true")
	t.Setenv("FT_ENGINE_DELIMITERS", ";,:")
	t.Setenv("FT_METRICS_ENABLED", "1")
	t.Setenv("FT_METRICS_PORT", "9191")
	t.Setenv("FT_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Engine.IgnoreCase)
	assert.Equal(t, []string{";", ":"}, cfg.Engine.Delimiters)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
