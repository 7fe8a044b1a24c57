// ABOUTME: Default implementations for client dependencies
// ABOUTME: Provides factory functions for the HTTP client, caches and loggers

package client

import (
	"time"

	"articles-app-core/core/interfaces"
	"articles-app-core/infrastructure/cache/memory"
	httpInfra "articles-app-core/infrastructure/http/standard"
	loggerInfra "articles-app-core/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultMemoryCache creates a default in-memory response cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultImageStore creates a default in-memory image store
func DefaultImageStore() interfaces.ImageStore {
	return memory.NewImageStore()
}

// DefaultLogger creates a logrus logger writing text to stderr at info level
func DefaultLogger() interfaces.Logger {
	logger, err := loggerInfra.New(loggerInfra.DefaultConfig())
	if err != nil {
		return QuietLogger()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithDefaultDependencies fills every unset dependency with its default
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient()
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		if c.Images == nil {
			c.Images = DefaultImageStore()
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		if c.Dispatcher == nil {
			c.Dispatcher = interfaces.Immediate
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
