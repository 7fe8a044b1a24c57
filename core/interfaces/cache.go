// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for caching raw provider responses.
//
// Example usage:
//
//	// Store a response body
//	err := cache.Set(ctx, "mostpopular:viewed:7", body, 5*time.Minute)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "mostpopular:viewed:7")
//	if err != nil {
//		// cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value is stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
