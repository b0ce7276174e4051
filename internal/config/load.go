package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TRAVEL"
	configName = "config"
	dotEnvFile = ".env"
)

var defaults = map[string]any{
	"server.port":          "5000",
	"server.legacy_routes": false,
	"server.cors_origins":  []string{"*"},
	"log.level":            "info",
	"log.format":           "console",
	"db.driver":            DriverMongo,
	"db.url":               "mongodb://127.0.0.1:27017",
	"db.name":              "travelPlanner",
	"db.path":              "travel.db",
	"db.connect_timeout":   10 * time.Second,
	"auth.jwt_secret":      "",
	"auth.token_ttl":       24 * time.Hour,
}

// Load resolves configuration. Precedence, lowest first: defaults,
// <dir>/config.yml, .env, process environment (TRAVEL_DB_URL, ...).
// A missing config file or .env is not an error.
func Load(dir string) (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.AddConfigPath(dir)
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config in %q: %w", dir, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
