package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/usersfetch/internal/app"
	"github.com/vk/usersfetch/internal/cli"
	"github.com/vk/usersfetch/internal/hcl"
	"github.com/vk/usersfetch/internal/users"
)

// main is the entrypoint for the usersfetch application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The report and user-facing errors go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	flags, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := app.Resolve(ctx, *flags, hcl.NewLoader())
	if err != nil {
		return err
	}

	usersApp, err := app.NewApp(outW, logW, cfg)
	if err != nil {
		return err
	}

	if err := usersApp.Run(ctx); err != nil {
		if users.IsReportable(err) {
			fmt.Fprintf(outW, "Error: %s\n", err)
			return &cli.ExitError{Code: 1}
		}
		return err
	}
	return nil
}
