package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
)

// loadAppConfig loads the application configuration from the environment
// and the optional config file at path.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Debug("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"db_driver", cfg.Database.Driver,
		"db_dsn_present", cfg.Database.DSN != "")

	return cfg, nil
}
