package sqlpool

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
)

// classify returns a short driver-qualified code for err, e.g.
// "mysql:1062", "postgres:23505" or "sqlite:19". Errors that did not come
// from a driver get an empty code, except for context expiry.
func classify(err error) string {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return "mysql:" + strconv.Itoa(int(mysqlErr.Number))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "postgres:" + pgErr.Code
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return "sqlite:" + strconv.Itoa(liteErr.Code())
	}

	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	return ""
}
