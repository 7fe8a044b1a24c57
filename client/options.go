// ABOUTME: Configuration options for the articles client
// ABOUTME: Provides functional options pattern for flexible client configuration

package client

import (
	"strings"
	"time"

	"articles-app-core/core/domain"
	"articles-app-core/core/interfaces"
	"articles-app-core/core/workers"
	"articles-app-core/infrastructure/provider/nytimes"
	"articles-app-core/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithAPIKey sets the NYT API key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = strings.TrimSpace(key)
		return nil
	}
}

// WithBaseURL points the provider at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		c.BaseURL = baseURL
		return nil
	}
}

// WithResponseCacheTTL sets how long provider responses are reused.
// Zero disables the response cache.
func WithResponseCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return validationError("ttl", ttl.String(), "response cache TTL cannot be negative")
		}
		c.ResponseCacheTTL = ttl
		return nil
	}
}

// WithCache sets a custom response cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithProvider replaces the NYT provider, e.g. with a fake in tests
func WithProvider(provider interfaces.ArticleProvider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

// WithDispatcher sets the UI context that receives state changes and images
func WithDispatcher(dispatcher interfaces.Dispatcher) Option {
	return func(c *Config) error {
		c.Dispatcher = dispatcher
		return nil
	}
}

// WithImageStore sets a custom decoded image store
func WithImageStore(store interfaces.ImageStore) Option {
	return func(c *Config) error {
		c.Images = store
		return nil
	}
}

// WithPoolConfig sets the image download pool configuration
func WithPoolConfig(config workers.PoolConfig) Option {
	return func(c *Config) error {
		c.PoolConfig = config
		return nil
	}
}

// WithDefaultPeriod sets the trending window new controllers start with
func WithDefaultPeriod(period domain.Period) Option {
	return func(c *Config) error {
		if !period.IsValid() {
			return validationError("period", int(period), "must be 1, 7 or 30 days")
		}
		c.DefaultPeriod = period
		return nil
	}
}

// WithAppConfig applies settings loaded from the environment
func WithAppConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return configurationError("nil application config", nil)
		}
		c.APIKey = strings.TrimSpace(cfg.API.Key)
		c.BaseURL = cfg.API.BaseURL
		c.ResponseCacheTTL = cfg.API.CacheTTL
		c.HTTPTimeout = cfg.HTTP.Timeout
		c.PoolConfig.MaxWorkers = cfg.Images.Workers
		if period := domain.Period(cfg.Feed.DefaultPeriod); period.IsValid() {
			c.DefaultPeriod = period
		}
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		BaseURL:          nytimes.DefaultBaseURL,
		ResponseCacheTTL: 5 * time.Minute,
		HTTPTimeout:      30 * time.Second,
		PoolConfig:       workers.DefaultPoolConfig(),
		DefaultPeriod:    domain.DefaultPeriod,
	}
}
