package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from AIRQ_-prefixed
// environment variables.
type Config struct {
	DataPath        string        `envconfig:"DATA_PATH" default:"data/AirQualityUCI.csv"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	PreviewLimit    int           `envconfig:"PREVIEW_LIMIT" default:"10"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("AIRQ", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.DataPath == "" {
		return nil, errors.New("AIRQ_DATA_PATH is required")
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("AIRQ_HTTP_ADDR is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid AIRQ_LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("AIRQ_SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.PreviewLimit <= 0 {
		return nil, errors.New("AIRQ_PREVIEW_LIMIT must be positive")
	}
	return &cfg, nil
}
