package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/phrazzld/tasks-api/internal/platform/sqlpool"
	"github.com/phrazzld/tasks-api/internal/platform/sqlstore/migrations"
	"github.com/pressly/goose/v3"
)

// gooseDialect maps a config driver name to the goose dialect and the
// migrations subdirectory for it.
func gooseDialect(driver string) (goose.Dialect, error) {
	switch driver {
	case sqlpool.DriverMySQL:
		return goose.DialectMySQL, nil
	case sqlpool.DriverPostgres:
		return goose.DialectPostgres, nil
	case sqlpool.DriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("no goose dialect for driver %q", driver)
	}
}

// ApplyMigrations brings db up to the latest schema for driver. Applied
// migrations are reported through t.Logf.
func ApplyMigrations(ctx context.Context, t *testing.T, db *sql.DB, driver string) error {
	t.Helper()

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	fsys, err := migrations.ForDialect(driver)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		t.Logf("goose: applied %s in %s", r.Source.Path, r.Duration)
	}
	return nil
}
