// Package config handles configuration loading, parsing, and validation
// from a config file and environment variables. It provides type-safe
// access to the server and database settings while keeping configuration
// details separate from request handling.
package config
