// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the request handlers, keeping them independent of the SQL dialect and
// driver in use. It also owns the error vocabulary shared by every
// persistence implementation.
package store
