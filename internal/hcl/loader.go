package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/usersfetch/internal/config"
	"github.com/vk/usersfetch/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the attributes accepted at the top level of a settings file.
type fileRoot struct {
	Endpoint  string `hcl:"endpoint,optional"`
	Timeout   string `hcl:"timeout,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Load parses the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	settings, err := decode(file.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
	}

	logger.Debug("HCL settings loaded.", "path", path, "endpoint", settings.Endpoint, "timeout", settings.Timeout)
	return settings, nil
}

// Parse decodes settings from in-memory HCL source. filename is only used in
// diagnostics.
func (l *Loader) Parse(src []byte, filename string) (*config.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*config.Settings, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, diags
	}

	settings := &config.Settings{
		Endpoint:  root.Endpoint,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
	}

	if root.Timeout != "" {
		timeout, err := time.ParseDuration(root.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", root.Timeout, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid timeout %q: must be positive", root.Timeout)
		}
		settings.Timeout = timeout
	}

	return settings, nil
}
