// Package config resolves the process configuration at startup from
// configs/config.yml, an optional .env file and TRAVEL_* environment variables.
package config

import "time"

// Supported persistence backends.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required"`
	// LegacyRoutes mounts the unauthenticated /api/trips and /api/expenses surface.
	LegacyRoutes bool     `mapstructure:"legacy_routes"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// DBConfig describes the document store.
type DBConfig struct {
	Driver         string        `mapstructure:"driver" validate:"oneof=mongo sqlite"`
	URL            string        `mapstructure:"url" validate:"required_if=Driver mongo"`
	Name           string        `mapstructure:"name" validate:"required_if=Driver mongo"`
	Path           string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=8"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}
