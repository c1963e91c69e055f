// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	pkgconfig "github.com/lookkg/lookkg/pkg/config"
)

// Store backend selection values.
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Config holds all configuration for the service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Store backend selection (file or postgres)
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`

	// File store. DataDir is resolved through the legacy variable chain,
	// see ResolveDataDir.
	DataDir string `env:"DATA_DIR"`

	// PostgreSQL (used when STORE_BACKEND=postgres)
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"lookkg"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"lookkg"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"lookkg"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	// Kafka. Empty brokers disable event publishing.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	// Tracing
	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4318"`
	TracingSampler  float64 `env:"TRACING_SAMPLER" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.StoreBackend != StoreBackendFile && c.StoreBackend != StoreBackendPostgres {
		return fmt.Errorf("invalid store backend: %q", c.StoreBackend)
	}
	return nil
}

// ResolveDataDir returns the file store directory: DATA_DIR, then the
// legacy KG_DATA_DIR and STORAGE_DIR variables, then ./data.
func (c *Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	for _, key := range []string{"KG_DATA_DIR", "STORAGE_DIR"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "./data"
}
