package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL      = "https://firms.modaps.eosdis.nasa.gov/data/active_fire"
	defaultFetchTimeout = 30 * time.Second
	defaultOutputDir    = "fire_data"
)

// Config holds all job settings, populated from environment variables.
// Every default matches the values the job shipped with, so a bare
// invocation needs no environment at all.
type Config struct {
	BaseURL      string
	FetchTimeout time.Duration
	OutputDir    string
	LogLevel     string
	LogFormat    string

	// MetricsAddr enables the debug HTTP endpoint when non-empty.
	MetricsAddr string
}

// Load reads configuration from environment variables (optionally .env),
// applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	fetchTimeout := defaultFetchTimeout
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		fetchTimeout = d
	}
	if fetchTimeout <= 0 {
		return nil, errors.New("FETCH_TIMEOUT must be positive")
	}

	cfg := &Config{
		BaseURL:      envOrDefault("FIRMS_BASE_URL", defaultBaseURL),
		FetchTimeout: fetchTimeout,
		OutputDir:    envOrDefault("OUTPUT_DIR", defaultOutputDir),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "json"),
		MetricsAddr:  strings.TrimSpace(os.Getenv("SNAPSHOT_METRICS_ADDR")),
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("FIRMS_BASE_URL is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
