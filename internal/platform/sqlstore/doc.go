// Package sqlstore implements store.TaskStore on top of sqlpool.
//
// Every method issues exactly one statement. Statements are written with
// `?` placeholders and rebound by the pool for the active driver.
package sqlstore
