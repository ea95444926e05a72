package app

import (
	"context"
	"fmt"

	"github.com/vk/usersfetch/internal/ctxlog"
	"github.com/vk/usersfetch/internal/httpclient"
	"github.com/vk/usersfetch/internal/report"
	"github.com/vk/usersfetch/internal/users"
)

// Run fetches the users, applies the city filter and prints the report.
// Expected failures are returned as the typed errors of package users.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer httpclient.Close(a.client)

	// The filter argument is checked first so that a bad invocation never
	// touches the network.
	var filter users.CityFilter
	if a.config.CityStart != nil {
		f, err := users.NewCityFilter(*a.config.CityStart)
		if err != nil {
			return err
		}
		filter = f
		a.logger.Debug("City filter enabled.", "prefix", filter.Prefix())
	}

	records, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	matched := filter.Apply(records)
	a.logger.Info("Users selected.", "fetched", len(records), "matched", len(matched))

	if err := report.Write(a.outW, matched); err != nil {
		return fmt.Errorf("failed to print users: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
