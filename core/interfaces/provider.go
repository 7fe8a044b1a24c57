// ABOUTME: Article provider contract used by the feed controller
// ABOUTME: Implementations fetch trending lists and paged search results from a news API

package interfaces

import (
	"context"

	"articles-app-core/core/domain"
)

// ArticleProvider fetches articles from a remote news service.
// Both calls are cancelable through ctx and return ([], error) on any failure.
type ArticleProvider interface {
	// FetchTrending returns the most popular articles for category over period.
	FetchTrending(ctx context.Context, category domain.Category, period domain.Period) ([]domain.TrendingArticle, error)

	// Search returns one page of full-text search results. Pages start at 0.
	Search(ctx context.Context, query string, page int) ([]domain.SearchArticle, error)
}
