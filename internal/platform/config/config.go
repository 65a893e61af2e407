package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Application configuration
	App AppConfig

	// Upstream catalog API configuration
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

// Address returns the server address in host:port format
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	LogLevel      string `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"APP_LOG_FORMAT" envDefault:"text"` // text or json
	EnableMetrics bool   `env:"APP_ENABLE_METRICS" envDefault:"true"`
}

// UpstreamConfig holds catalog API configuration
type UpstreamConfig struct {
	BaseURL   string        `env:"CATALOG_API_BASE_URL" envDefault:"https://rickandmortyapi.com/api"`
	Timeout   time.Duration `env:"CATALOG_API_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"CATALOG_API_USER_AGENT" envDefault:"charview-bot/1.0"`

	// PageSize is the page size used when residents of a location are
	// paginated locally. It mirrors the upstream page size.
	PageSize int `env:"CATALOG_PAGE_SIZE" envDefault:"20"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.App.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)",
			c.App.LogLevel)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.App.LogFormat] {
		return fmt.Errorf("invalid log format: %s (must be text or json)",
			c.App.LogFormat)
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("catalog API base URL is required")
	}
	parsed, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid catalog API base URL: %s", c.Upstream.BaseURL)
	}

	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("catalog API timeout must be positive")
	}
	if c.Upstream.PageSize < 1 {
		return fmt.Errorf("catalog page size must be >= 1")
	}

	return nil
}
