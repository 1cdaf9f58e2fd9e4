package sqlpool

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// pingTimeout bounds the connectivity check done by Open.
const pingTimeout = 5 * time.Second

const componentName = "sql_pool"

// Written is the outcome of a statement that modifies rows.
type Written struct {
	// InsertedID is the identity assigned by the store. It is only set
	// by Insert.
	InsertedID int64
	// AffectedRows is the number of rows the statement matched.
	AffectedRows int64
}

// Pool is a bounded set of reusable connections to the task store.
//
// Every statement acquires exactly one connection for its duration and
// hands it back on all exit paths. When all connections are busy, callers
// wait for one to free up; the pool itself imposes no timeout and never
// retries. Failures come back as *store.StoreError.
type Pool struct {
	db          *sqlx.DB
	returningID bool
	logger      *slog.Logger
}

// Open connects to the store described by cfg, sizes the pool and checks
// that the store answers. The caller owns the returned pool and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Pool, error) {
	db, driverName, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pool := New(db, driverName, log)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pool.logger.Info("database connection pool ready",
		slog.String("driver", driverName),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns))
	return pool, nil
}

// New wraps an already opened database handle. driverName selects the
// placeholder style and how inserted identities are read back.
// If log is nil, the default logger is used.
func New(db *sql.DB, driverName string, log *slog.Logger) *Pool {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{
		db:          sqlx.NewDb(db, driverName),
		returningID: sqlx.BindType(driverName) == sqlx.DOLLAR,
		logger:      log.With(slog.String("component", componentName)),
	}
}

// Select runs a read statement and scans every row into dest, which must be
// a pointer to a slice. Columns are matched to `db` struct tags.
func (p *Pool) Select(ctx context.Context, dest any, query string, args ...any) error {
	const op = "select"

	conn, err := p.acquire(ctx, op)
	if err != nil {
		return err
	}
	defer p.release(ctx, conn)

	start := time.Now()
	if err := conn.SelectContext(ctx, dest, p.db.Rebind(query), args...); err != nil {
		return p.fail(ctx, op, err)
	}
	p.done(ctx, op, start)
	return nil
}

// Insert runs an INSERT and reports the identity the store assigned.
// query must not carry its own RETURNING clause.
func (p *Pool) Insert(ctx context.Context, query string, args ...any) (Written, error) {
	const op = "insert"

	conn, err := p.acquire(ctx, op)
	if err != nil {
		return Written{}, err
	}
	defer p.release(ctx, conn)

	start := time.Now()
	query = p.db.Rebind(query)

	// Postgres drivers have no LastInsertId; ask for the row back instead.
	if p.returningID {
		var id int64
		if err := conn.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return Written{}, p.fail(ctx, op, err)
		}
		p.done(ctx, op, start)
		return Written{InsertedID: id, AffectedRows: 1}, nil
	}

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return Written{}, p.fail(ctx, op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Written{}, p.fail(ctx, op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Written{}, p.fail(ctx, op, err)
	}
	p.done(ctx, op, start)
	return Written{InsertedID: id, AffectedRows: n}, nil
}

// Exec runs an UPDATE or DELETE and reports how many rows it matched.
func (p *Pool) Exec(ctx context.Context, query string, args ...any) (Written, error) {
	const op = "exec"

	conn, err := p.acquire(ctx, op)
	if err != nil {
		return Written{}, err
	}
	defer p.release(ctx, conn)

	start := time.Now()
	res, err := conn.ExecContext(ctx, p.db.Rebind(query), args...)
	if err != nil {
		return Written{}, p.fail(ctx, op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Written{}, p.fail(ctx, op, err)
	}
	p.done(ctx, op, start)
	return Written{AffectedRows: n}, nil
}

// Ping checks that the store is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return p.fail(ctx, "ping", err)
	}
	return nil
}

// Stats exposes the pool counters (open, in use, wait count...).
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// DB returns the underlying handle, for schema setup in tests and tools.
func (p *Pool) DB() *sql.DB {
	return p.db.DB
}

// DriverName reports the database/sql driver backing the pool.
func (p *Pool) DriverName() string {
	return p.db.DriverName()
}

// Close releases every connection held by the pool.
func (p *Pool) Close() error {
	return p.db.Close()
}

// acquire blocks until a connection is free or ctx is done.
func (p *Pool) acquire(ctx context.Context, op string) (*sqlx.Conn, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, p.fail(ctx, op, err)
	}
	return conn, nil
}

func (p *Pool) release(ctx context.Context, conn *sqlx.Conn) {
	if err := conn.Close(); err != nil {
		p.log(ctx).Warn("failed to release connection",
			slog.String("error", err.Error()))
	}
}

func (p *Pool) fail(ctx context.Context, op string, err error) error {
	code := classify(err)
	p.log(ctx).Error("statement failed",
		slog.String("operation", op),
		slog.String("code", code),
		slog.String("error", err.Error()))
	return store.NewStoreError(op, code, err)
}

func (p *Pool) done(ctx context.Context, op string, start time.Time) {
	p.log(ctx).Debug("statement executed",
		slog.String("operation", op),
		slog.Duration("duration", time.Since(start)))
}

func (p *Pool) log(ctx context.Context) *slog.Logger {
	return logger.ForComponent(ctx, p.logger, componentName)
}
