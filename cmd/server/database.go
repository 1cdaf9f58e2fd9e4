package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/sqlpool"
)

// setupAppDatabase opens the bounded connection pool and checks that the
// store answers. The service does not start without a reachable store.
// The error is returned unlogged; main reports it once.
func setupAppDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sqlpool.Pool, error) {
	pool, err := sqlpool.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
