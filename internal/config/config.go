package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig describes how to reach the task store and how large the
// connection pool may grow.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"   validate:"required,oneof=mysql postgres sqlite"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"     validate:"gte=0,lt=65536"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`

	// DSN overrides the individual connection fields when set.
	// SQLite has no host, so it always needs one.
	DSN string `mapstructure:"dsn" validate:"required_if=Driver sqlite"`

	// MaxOpenConns bounds the pool. Callers wait for a free connection
	// once the bound is reached.
	MaxOpenConns    int           `mapstructure:"max_open_conns"     validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"     validate:"gte=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"  validate:"gte=0"`
}
