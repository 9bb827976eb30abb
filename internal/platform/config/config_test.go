package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://api.covid19api.com", cfg.Stats.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Links.Delay)
	assert.True(t, cfg.Links.Open)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad(t *testing.T) {
	t.Run("file then env precedence", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cerb.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
stats:
  base_url: http://stats.internal
  timeout: 3s
log:
  level: debug
  format: console
links:
  open: false
`), 0o600))

		t.Setenv("CERB_CONFIG", path)
		t.Setenv("CERB_LOG_LEVEL", "error")
		t.Setenv("CERB_BROWSER_DELAY", "500ms")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://stats.internal", cfg.Stats.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Stats.Timeout)
		assert.Equal(t, 5*time.Minute, cfg.Stats.CacheTTL, "untouched defaults survive the file merge")
		assert.Equal(t, "error", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.False(t, cfg.Links.Open)
		assert.Equal(t, 500*time.Millisecond, cfg.Links.Delay)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CERB_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("CERB_CONFIG", "")
		t.Setenv("CERB_HTTP_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CERB_HTTP_TIMEOUT")
	})

	t.Run("malformed bool", func(t *testing.T) {
		t.Setenv("CERB_CONFIG", "")
		t.Setenv("CERB_OPEN_LINKS", "maybe")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty base url", func(c *Config) { c.Stats.BaseURL = "" }, "stats.base_url"},
		{"zero timeout", func(c *Config) { c.Stats.Timeout = 0 }, "stats.timeout"},
		{"negative cache ttl", func(c *Config) { c.Stats.CacheTTL = -time.Second }, "stats.cache_ttl"},
		{"negative delay", func(c *Config) { c.Links.Delay = -time.Second }, "links.delay"},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
