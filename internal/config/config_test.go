package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://firms.modaps.eosdis.nasa.gov/data/active_fire", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "fire_data", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FIRMS_BASE_URL", "http://localhost:9091/data/active_fire")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SNAPSHOT_METRICS_ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9091/data/active_fire", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLoad_NegativeFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "-10s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}
