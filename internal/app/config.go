package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/usersfetch/internal/config"
	"github.com/vk/usersfetch/internal/httpclient"
	"github.com/vk/usersfetch/internal/users"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CityStart is nil when no city filter was requested. A non-nil blank
	// value is kept as is and rejected when the run starts.
	CityStart *string

	Endpoint   string
	Timeout    time.Duration
	ConfigPath string // optional settings file

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("Endpoint is a required configuration field and cannot be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("Timeout must be positive, got %s", cfg.Timeout)
	}
	if err := ValidateLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if err := ValidateLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve fills every field left empty on the command line, first from the
// settings file named by cfg.ConfigPath (if any) and then from the built-in
// defaults, and validates the result.
func Resolve(ctx context.Context, cfg Config, loader config.Loader) (*Config, error) {
	if cfg.ConfigPath != "" {
		if loader == nil {
			return nil, errors.New("a settings file was given but no loader is available")
		}
		settings, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		merge(&cfg, settings)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = users.DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = httpclient.DefaultTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	return NewConfig(cfg)
}

// merge copies settings into the fields of cfg that are still unset.
func merge(cfg *Config, s *config.Settings) {
	if s == nil {
		return
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = s.Endpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = s.Timeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = s.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = s.LogFormat
	}
}

// ValidateLogLevel accepts the levels understood by newLogger.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
}

// ValidateLogFormat accepts the formats understood by newLogger.
func ValidateLogFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}
