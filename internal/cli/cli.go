package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/usersfetch/internal/app"
	"github.com/vk/usersfetch/internal/version"
)

// ExitError is a custom error type that includes a specific exit code.
// An empty Message means the user has already been told what went wrong.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// optionalString is a flag.Value that remembers whether it was set at all,
// so that "-c ''" can be told apart from no -c.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string {
	return o.value
}

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(version.Application, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
usersfetch - Fetch and display users from a public API.

Usage:
  usersfetch [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var cityStart optionalString
	flagSet.Var(&cityStart, "city-start", "Optional: only print users whose city starts with `LETTER` (case-insensitive).")
	flagSet.Var(&cityStart, "c", "Optional: only print users whose city starts with `LETTER` (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")
	versionFlag := flagSet.Bool("version", false, "Print version information and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, version.Info().String())
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" {
		if err := app.ValidateLogFormat(logFormat); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if logLevel != "" {
		if err := app.ValidateLogLevel(logLevel); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	// Endpoint, timeout and unset logging options are filled in later by
	// app.Resolve, so the config is not validated here.
	config := &app.Config{
		CityStart:  cityStart.ptr(),
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}

	slog.Debug("CLI parser finished successfully.", "config_path", config.ConfigPath)
	return config, false, nil
}
