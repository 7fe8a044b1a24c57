// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the feed controller and image cache

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores raw provider responses
	Cache Cache

	// HTTPClient performs provider and image requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Provider serves trending and search results
	Provider ArticleProvider

	// Dispatcher runs state changes and image callbacks on the UI context
	Dispatcher Dispatcher

	// Images holds decoded thumbnails
	Images ImageStore
}
