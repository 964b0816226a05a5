package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the backend service
type Config struct {
	// Server configuration
	HTTPPort int    `env:"BACKEND_HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Metrics
	MetricsEnabled bool `env:"BACKEND_METRICS_ENABLED" envDefault:"true"`

	// CORS
	CORSAllowOrigins []string `env:"BACKEND_CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	// Timeouts
	Timeouts TimeoutConfig
}

// TimeoutConfig holds server timeout configuration
type TimeoutConfig struct {
	Read     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	Write    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	Idle     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	// not an error: production environments may not have a .env file
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if len(c.CORSAllowOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin is required")
	}

	timeouts := map[string]time.Duration{
		"read":     c.Timeouts.Read,
		"write":    c.Timeouts.Write,
		"idle":     c.Timeouts.Idle,
		"shutdown": c.Timeouts.Shutdown,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s timeout must be positive, got %s", name, d)
		}
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
