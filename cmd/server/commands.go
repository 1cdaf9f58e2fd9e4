package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/urfave/cli/v3"
)

// newRootCommand returns the top-level CLI command. Without a subcommand it
// runs the HTTP server.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks-api",
		Usage: "HTTP API for managing task records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: ./config.yaml if present)",
				Sources: cli.EnvVars("TASKS_CONFIG"),
			},
		},
		Action: runServe,
		Commands: []*cli.Command{
			{
				Name:   "ping",
				Usage:  "Check that the database is reachable and exit",
				Action: runPing,
			},
		},
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadAppConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	pool, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app := newApplication(cfg, log, pool)
	return app.Run(ctx)
}

func runPing(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadAppConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	// Keep stdout clean for the result line.
	log := logger.New(cmd.Root().ErrWriter, cfg.Server.LogLevel)

	pool, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			log.Warn("failed to close database pool", slog.String("error", err.Error()))
		}
	}()

	_, err = fmt.Fprintf(cmd.Root().Writer, "database reachable (%s)\n", pool.DriverName())
	return err
}
