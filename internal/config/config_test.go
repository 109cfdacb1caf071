package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_HOST", "APP_PORT", "HTTP_REQUEST_TIMEOUT_SECONDS",
		"REDIS_ADDR", "REDIS_DB", "REDIS_CACHE_TTL_SECONDS",
		"LOG_LEVEL", "CHART_WIDTH", "CHART_HEIGHT", "CHART_CACHE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "performance-dashboard", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 1400, cfg.Chart.Width)
	assert.Equal(t, 700, cfg.Chart.Height)
	assert.True(t, cfg.Chart.CacheEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CHART_HEIGHT", "not-a-number")
	t.Setenv("CHART_CACHE_ENABLED", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 700, cfg.Chart.Height, "invalid ints fall back to the default")
	assert.False(t, cfg.Chart.CacheEnabled)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "primary")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}
