// Package core contains the business logic of the articles client.
// It is framework-agnostic and can be embedded in any presentation layer.
//
// The core package is organized into several sub-packages:
//
// - domain: Article models, feed modes, periods and the FeedState snapshot
// - feed: The feed controller driving trending and search lists
// - imagecache: Deduplicating, cancelable thumbnail loader
// - workers: Bounded worker pool used for image downloads
// - errors: Custom error types and human-readable fetch messages
// - interfaces: Contracts for external dependencies (provider, cache, HTTP, logger, dispatcher)
//
// # Threading
//
// Configuration calls and image requests are made from the UI context and
// return immediately. Network work happens on goroutines; results are handed
// back through an interfaces.Dispatcher so observers and image callbacks only
// ever run on the UI context.
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Provider:   myProvider,   // implements interfaces.ArticleProvider
//	    Dispatcher: myUIQueue,    // implements interfaces.Dispatcher
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	controller := feed.NewController(deps, domain.PeriodWeek)
//	unsubscribe := controller.Subscribe(func(state domain.FeedState) {
//	    render(state)
//	})
//	defer unsubscribe()
//
//	controller.ConfigureTrending(domain.CategoryMostViewed)
package core
