package sqlpool

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/config"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Supported values of config.DatabaseConfig.Driver.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// database/sql driver names for each backend.
const (
	mysqlDriverName  = "mysql"
	pgxDriverName    = "pgx"
	sqliteDriverName = "sqlite"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// openDB opens (but does not connect) a handle for cfg and returns it with
// the database/sql driver name it was opened with.
func openDB(cfg config.DatabaseConfig) (*sql.DB, string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		dsn, err := MySQLDSN(cfg)
		if err != nil {
			return nil, "", err
		}
		db, err := sql.Open(mysqlDriverName, dsn)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open database connection: %w", err)
		}
		return db, mysqlDriverName, nil

	case DriverPostgres:
		connCfg, err := pgx.ParseConfig(PostgresDSN(cfg))
		if err != nil {
			return nil, "", fmt.Errorf("invalid postgres connection settings: %w", err)
		}
		return stdlib.OpenDB(*connCfg), pgxDriverName, nil

	case DriverSQLite:
		if cfg.DSN == "" {
			return nil, "", fmt.Errorf("sqlite requires a DSN")
		}
		db, err := sql.Open(sqliteDriverName, cfg.DSN)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open database connection: %w", err)
		}
		return db, sqliteDriverName, nil

	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// MySQLDSN builds the go-sql-driver DSN for cfg. An explicit cfg.DSN is
// parsed and kept, apart from ClientFoundRows which is always switched on:
// an UPDATE that rewrites a row with identical values must still count as
// affected, otherwise it would read as "not found".
func MySQLDSN(cfg config.DatabaseConfig) (string, error) {
	var mc *mysql.Config
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("invalid mysql DSN: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(portOrDefault(cfg.Port, 3306)))
		mc.DBName = cfg.Name
	}
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}

// PostgresDSN returns cfg.DSN if set, otherwise a postgres:// URL built
// from the individual fields.
func PostgresDSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(portOrDefault(cfg.Port, 5432))),
		Path:   "/" + cfg.Name,
	}
	return u.String()
}

func portOrDefault(port, def int) int {
	if port > 0 {
		return port
	}
	return def
}
