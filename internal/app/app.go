// Package app handles application-level wiring: load config, construct
// gateways and services, run the HTTP surface.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"chartwhisperer/internal/config"
	apihttp "chartwhisperer/internal/transport/http/api"
)

// App is the assembled application.
type App struct {
	cfg  *config.Config
	http *apihttp.Server
}

// Run starts the HTTP server, blocking until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.http == nil {
		return fmt.Errorf("app not initialized")
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.http.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
