package config

import (
	"context"
	"time"
)

// Settings holds values read from a settings file. A zero field means the
// file did not set it and the caller's default applies.
type Settings struct {
	Endpoint  string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
}

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the file at path and translates it into Settings.
	Load(ctx context.Context, path string) (*Settings, error)
}
