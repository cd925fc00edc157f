// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the tray service settings. The optimizer itself needs no
// configuration; everything here concerns the HTTP surface around it.
type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort string

	// GinMode is the gin framework mode: debug, release, or test.
	GinMode string

	// BatchWorkers is the worker count for batch candidate scoring.
	BatchWorkers int
}

const (
	defaultHTTPPort     = "8080"
	defaultGinMode      = "release"
	defaultBatchWorkers = 4
)

// LoadFromEnv reads configuration from environment variables, applying
// defaults for anything unset.
//
//	HTTP_PORT      (default "8080")
//	GIN_MODE       (default "release")
//	BATCH_WORKERS  (default 4, must be >= 1)
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", defaultHTTPPort),
		GinMode:      getEnv("GIN_MODE", defaultGinMode),
		BatchWorkers: defaultBatchWorkers,
	}

	if raw := os.Getenv("BATCH_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_WORKERS %q: %w", raw, err)
		}
		if workers < 1 {
			return nil, fmt.Errorf("BATCH_WORKERS must be at least 1, got %d", workers)
		}
		cfg.BatchWorkers = workers
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q (want debug, release, or test)", cfg.GinMode)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
