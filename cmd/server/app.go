package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/sqlpool"
	"github.com/phrazzld/tasks-api/internal/platform/sqlstore"
	"github.com/phrazzld/tasks-api/internal/store"
)

// application holds the dependencies shared by the HTTP handlers. The pool
// is created once at startup and injected; there is no global pool.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	pool      *sqlpool.Pool
	taskStore store.TaskStore
}

func newApplication(cfg *config.Config, logger *slog.Logger, pool *sqlpool.Pool) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		pool:      pool,
		taskStore: sqlstore.NewSQLTaskStore(pool, logger),
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down and releases
// the pool.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool == nil {
		return
	}
	if err := app.pool.Close(); err != nil {
		app.logger.Error("failed to close database pool", slog.String("error", err.Error()))
		return
	}
	app.logger.Info("database pool closed")
}
