// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the article API, HTTP, image loading and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// API contains article provider configuration
	API APIConfig

	// HTTP contains outbound HTTP configuration
	HTTP HTTPConfig

	// Images contains thumbnail loading configuration
	Images ImageConfig

	// Feed contains feed controller defaults
	Feed FeedConfig

	// Log contains logging configuration
	Log LogConfig
}

// APIConfig holds article provider configuration
type APIConfig struct {
	// Key is the NYT developer API key
	Key string

	// BaseURL is the root of the NYT APIs
	BaseURL string

	// CacheTTL is how long raw responses are reused. Zero disables the cache.
	CacheTTL time.Duration
}

// HTTPConfig holds outbound HTTP configuration
type HTTPConfig struct {
	Timeout time.Duration
}

// ImageConfig holds thumbnail loading configuration
type ImageConfig struct {
	// Workers is the number of concurrent image downloads
	Workers int
}

// FeedConfig holds feed defaults
type FeedConfig struct {
	// DefaultPeriod is the initial trending window in days (1, 7 or 30)
	DefaultPeriod int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			Key:      os.Getenv("NYT_API_KEY"),
			BaseURL:  getEnvOrDefault("NYT_BASE_URL", "https://api.nytimes.com/svc"),
			CacheTTL: time.Duration(getEnvAsIntOrDefault("RESPONSE_CACHE_TTL", 300)) * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout: time.Duration(getEnvAsIntOrDefault("HTTP_TIMEOUT", 30)) * time.Second,
		},
		Images: ImageConfig{
			Workers: getEnvAsIntOrDefault("IMAGE_WORKERS", 6),
		},
		Feed: FeedConfig{
			DefaultPeriod: getEnvAsIntOrDefault("DEFAULT_PERIOD", 7),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   os.Getenv("LOG_FILE"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Key) == "" {
		return errors.New("NYT API key cannot be empty")
	}

	if c.API.BaseURL == "" {
		return errors.New("NYT base URL cannot be empty")
	}

	if c.API.CacheTTL < 0 {
		return errors.New("response cache TTL cannot be negative")
	}

	if c.HTTP.Timeout < time.Second {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	if c.Images.Workers < 1 {
		return errors.New("image workers must be at least 1")
	}

	switch c.Feed.DefaultPeriod {
	case 1, 7, 30:
	default:
		return fmt.Errorf("default period must be 1, 7 or 30, got %d", c.Feed.DefaultPeriod)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
