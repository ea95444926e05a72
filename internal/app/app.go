package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/usersfetch/internal/httpclient"
	"github.com/vk/usersfetch/internal/users"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	client  *http.Client
	fetcher *users.Fetcher
}

// NewApp is the constructor for the main application. The report is written
// to outW and logs to logW, so the two never interleave on standard output.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	client, err := httpclient.New(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}
	logger.Debug("HTTP client created.", "timeout", cfg.Timeout)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		client:  client,
		fetcher: users.NewFetcher(client, cfg.Endpoint),
	}, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}
