// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and the NYT APIs.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: Response cache and image store on patrickmn/go-cache
// - dispatch: Serial queue standing in for the UI context
// - http/standard: Standard library HTTP client with timeouts
// - logger/logrus: Structured logger on sirupsen/logrus with file rotation
// - provider/nytimes: Most popular and article search API client
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "mostpopular:viewed:7", body, 5*time.Minute)
//	body, err := cache.Get(ctx, "mostpopular:viewed:7")
//
//	images := memory.NewImageStore()
//	images.Set(url, img)
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://api.nytimes.com/svc/...")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.New(logrus.Config{Level: "debug", Format: "json"})
//	logger.Info("Fetch completed", map[string]interface{}{
//	    "mode":  "trending",
//	    "items": 20,
//	})
package infrastructure
