// Package config loads the application configuration from the environment.
//
// Values come from process env vars (optionally seeded from a `.env` file),
// are mapped into typed structs with koanf and checked with validator tags so
// the process fails fast on bad or missing settings.
//
// Env var names use the SYMBIOSIS_ prefix and a double underscore for nesting:
//
//	SYMBIOSIS_SERVER__PORT=5000        -> server.port
//	SYMBIOSIS_DATABASE__URL=postgres://… -> database.url
//
// The bare PORT variable is also honoured for the listen port, which is what
// most hosting platforms set.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration env var carries.
const EnvPrefix = "SYMBIOSIS_"

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development",
// "production"). "local" turns on SQL logging and migrations at startup.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. The *Timeout ints are seconds.
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int           `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout       int           `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout        int           `koanf:"idle_timeout" validate:"gte=0"`
	RequestTimeout     time.Duration `koanf:"request_timeout" validate:"gte=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          float64       `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig describes how to reach the hosted Postgres store.
//
// Either URL (the connection string handed out by the hosting provider) or
// the discrete Host/User/Name fields must be set.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	Host            string        `koanf:"host" validate:"required_without=URL"`
	Port            int           `koanf:"port" validate:"omitempty,gt=0"`
	User            string        `koanf:"user" validate:"required_without=URL"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_without=URL"`
	SSLMode         string        `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int           `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime int           `koanf:"conn_max_idle_time" validate:"gte=0"`
	QueryTimeout    time.Duration `koanf:"query_timeout" validate:"gte=0"`
}

// AuthConfig stores the session signing secret and policy.
//
// SecretKey is the store's JWT secret; sessions issued by /auth/login and by
// the store itself verify against it.
type AuthConfig struct {
	SecretKey      string        `koanf:"secret_key" validate:"required,min=16"`
	TokenTTL       time.Duration `koanf:"token_ttl" validate:"gt=0"`
	RequireSession bool          `koanf:"require_session"`
}

// defaults are applied before the environment is read, so any env var wins.
var defaults = map[string]any{
	"primary.env":                 "development",
	"server.port":                 "5000",
	"server.read_timeout":         30,
	"server.write_timeout":        30,
	"server.idle_timeout":         60,
	"server.request_timeout":      15 * time.Second,
	"server.cors_allowed_origins": []string{"*"},
	"server.rate_limit":           20.0,
	"database.port":               5432,
	"database.ssl_mode":           "require",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  3600,
	"database.conn_max_idle_time": 300,
	"database.query_timeout":      5 * time.Second,
	"auth.token_ttl":              time.Hour,
}

// listKeys are read from comma separated env values.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":         true,
	"observability.health_checks.checks": true,
}

// envKey maps SYMBIOSIS_SERVER__PORT to server.port.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func envValue(key, value string) (string, any) {
	key = envKey(key)
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig reads, validates and completes the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		if err := k.Set("server.port", port); err != nil {
			return nil, fmt.Errorf("applying PORT: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
	cfg.Observability.ServiceName = "urban-symbiosis-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return cfg, nil
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
