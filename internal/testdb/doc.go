// Package testdb opens throw-away task databases for tests.
//
// By default each call to Open creates a fresh SQLite file under t.TempDir,
// applies the embedded schema with goose and wraps the handle in a real
// sqlpool.Pool. Setting TASKS_TEST_DB_DRIVER and TASKS_TEST_DB_DSN points
// the same helpers at an external MySQL or Postgres server instead; the
// tasks_ table is emptied before the test runs.
package testdb
