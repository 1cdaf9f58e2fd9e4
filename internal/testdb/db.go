package testdb

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/sqlpool"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup work done against the test database.
const TestTimeout = 10 * time.Second

// Environment variables selecting an external test database.
const (
	EnvDriver = "TASKS_TEST_DB_DRIVER"
	EnvDSN    = "TASKS_TEST_DB_DSN"
)

// IsIntegrationTestEnvironment reports whether an external database was
// configured for the tests.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv(EnvDriver) != "" && os.Getenv(EnvDSN) != ""
}

// Config returns the database configuration tests should use, allowing at
// most maxOpen concurrent connections.
func Config(t *testing.T, maxOpen int) config.DatabaseConfig {
	t.Helper()

	cfg := config.DatabaseConfig{
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxOpen,
		ConnMaxIdleTime: time.Minute,
	}
	if IsIntegrationTestEnvironment() {
		cfg.Driver = os.Getenv(EnvDriver)
		cfg.DSN = os.Getenv(EnvDSN)
		return cfg
	}

	path := filepath.Join(t.TempDir(), "tasks.db")
	cfg.Driver = sqlpool.DriverSQLite
	cfg.DSN = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	return cfg
}

// Open returns a migrated, empty task database behind a pool of ten
// connections. The pool is closed when the test ends.
func Open(t *testing.T) *sqlpool.Pool {
	t.Helper()
	return OpenWithConns(t, 10)
}

// OpenWithConns is Open with an explicit connection limit.
func OpenWithConns(t *testing.T, maxOpen int) *sqlpool.Pool {
	t.Helper()

	cfg := Config(t, maxOpen)
	log := logger.New(io.Discard, "error")

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	// Schema setup runs on its own short-lived pool so that a tiny
	// connection limit under test cannot starve goose.
	setupCfg := cfg
	setupCfg.MaxOpenConns, setupCfg.MaxIdleConns = 2, 2
	setup, err := sqlpool.Open(ctx, setupCfg, log)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, ApplyMigrations(ctx, t, setup.DB(), cfg.Driver), "failed to migrate test database")
	_, err = setup.DB().ExecContext(ctx, "DELETE FROM tasks_")
	require.NoError(t, err, "failed to empty tasks_")
	require.NoError(t, setup.Close())

	pool, err := sqlpool.Open(ctx, cfg, log)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	return pool
}
