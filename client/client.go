// ABOUTME: Main client for the articles library wiring provider, feeds and thumbnails
// ABOUTME: Composition root that builds explicitly injected instances instead of singletons

package client

import (
	"sync"
	"time"

	"articles-app-core/core/domain"
	"articles-app-core/core/feed"
	"articles-app-core/core/imagecache"
	"articles-app-core/core/interfaces"
	"articles-app-core/core/workers"
	httpInfra "articles-app-core/infrastructure/http/standard"
	"articles-app-core/infrastructure/provider/nytimes"
)

// Client owns the shared provider, worker pool and image cache, and hands
// out feed controllers bound to them
type Client struct {
	deps   interfaces.Dependencies
	pool   *workers.Pool
	images *imagecache.Cache
	config Config

	mu          sync.Mutex
	controllers map[*feed.Controller]struct{}
	closed      bool
}

// Config holds the configuration for the client
type Config struct {
	// NYT provider settings, ignored when Provider is set
	APIKey           string
	BaseURL          string
	ResponseCacheTTL time.Duration

	// HTTPTimeout applies to the default HTTP client
	HTTPTimeout time.Duration

	// Dependencies; nil values are filled with defaults. Without a
	// Dispatcher, feed and image callbacks run on background goroutines,
	// so applications with a UI loop should set one with WithDispatcher.
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Provider   interfaces.ArticleProvider
	Dispatcher interfaces.Dispatcher
	Images     interfaces.ImageStore

	// PoolConfig sizes the image download pool
	PoolConfig workers.PoolConfig

	// DefaultPeriod is the trending window new controllers start with
	DefaultPeriod domain.Period
}

// New creates a client with the given options
func New(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	fillDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Dispatcher: config.Dispatcher,
		Images:     config.Images,
		Provider:   config.Provider,
	}

	if deps.Provider == nil {
		provider, err := nytimes.New(deps, nytimes.Config{
			BaseURL:  config.BaseURL,
			APIKey:   config.APIKey,
			CacheTTL: config.ResponseCacheTTL,
		})
		if err != nil {
			return nil, configurationError("failed to create article provider", err)
		}
		deps.Provider = provider
	}

	logger := deps.Logger
	poolConfig := config.PoolConfig
	if poolConfig.OnPanic == nil {
		poolConfig.OnPanic = func(workerID int, recovered interface{}) {
			logger.Error("Image worker panicked", map[string]interface{}{
				"worker": workerID,
				"panic":  recovered,
			})
		}
	}
	pool := workers.NewPool(poolConfig)

	return &Client{
		deps:        deps,
		pool:        pool,
		images:      imagecache.New(deps, pool),
		config:      config,
		controllers: make(map[*feed.Controller]struct{}),
	}, nil
}

// NewFeedController creates a controller for one screen. The client
// forgets it once the screen closes it, and closes any still open in Close.
func (c *Client) NewFeedController() (*feed.Controller, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	controller := feed.NewController(c.deps, c.config.DefaultPeriod)
	c.controllers[controller] = struct{}{}
	controller.OnClose(func() { c.forget(controller) })
	return controller, nil
}

func (c *Client) forget(controller *feed.Controller) {
	c.mu.Lock()
	delete(c.controllers, controller)
	c.mu.Unlock()
}

// Images returns the shared thumbnail cache
func (c *Client) Images() *imagecache.Cache {
	return c.images
}

// Provider returns the article provider used by feed controllers
func (c *Client) Provider() interfaces.ArticleProvider {
	return c.deps.Provider
}

// Close tears down every controller, cancels image downloads and stops the
// worker pool
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	controllers := make([]*feed.Controller, 0, len(c.controllers))
	for controller := range c.controllers {
		controllers = append(controllers, controller)
	}
	c.mu.Unlock()

	for _, controller := range controllers {
		controller.Close()
	}
	c.images.Close()
	return c.pool.Stop()
}

// fillDefaults replaces unset dependencies with default implementations
func fillDefaults(config *Config) {
	if config.HTTPClient == nil {
		timeout := config.HTTPTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		config.HTTPClient = httpInfra.NewStandardHTTPClient(timeout)
	}
	if config.Cache == nil {
		config.Cache = DefaultMemoryCache()
	}
	if config.Images == nil {
		config.Images = DefaultImageStore()
	}
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}
	if config.Dispatcher == nil {
		config.Logger.Warn("No dispatcher configured, callbacks run on background goroutines", nil)
		config.Dispatcher = interfaces.Immediate
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Provider == nil && config.APIKey == "" {
		return ErrNoAPIKey
	}
	if !config.DefaultPeriod.IsValid() {
		return validationError("period", int(config.DefaultPeriod), "must be 1, 7 or 30 days")
	}
	return nil
}
