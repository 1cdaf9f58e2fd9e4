// Package sqlpool owns the bounded connection pool toward the task store.
//
// It exposes three statement primitives: Select returns rows, Insert and
// Exec return a Written outcome. Callers pick the primitive by the kind of
// statement they issue. Parameters are always bound, never interpolated,
// and written with `?` placeholders regardless of the backend; the pool
// rebinds them for Postgres.
//
// MySQL (go-sql-driver), Postgres (pgx) and SQLite (modernc) are supported.
package sqlpool
