// Package migrations embeds the tasks_ schema for every supported backend.
//
// The service never applies these itself; they are the reference DDL for
// operators and are run by goose in the test database helpers.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var files embed.FS

// ForDialect returns the migration files for dialect, which is one of
// "mysql", "postgres" or "sqlite".
func ForDialect(dialect string) (fs.FS, error) {
	switch dialect {
	case "mysql", "postgres", "sqlite":
		return fs.Sub(files, dialect)
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
}
