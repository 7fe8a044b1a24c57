// ABOUTME: Article domain models for the most popular (trending) feed
// ABOUTME: Defines the read-only Article view shared by trending and search results

package domain

import (
	"time"

	timeutil "articles-app-core/pkg/utils/time"
)

// StandardThumbnailFormat is the media-metadata format used for list thumbnails
const StandardThumbnailFormat = "Standard Thumbnail"

// Article is the read-only view presentation renders for a list row.
// Both TrendingArticle and SearchArticle implement it.
type Article interface {
	ArticleID() string
	Headline() string
	Summary() string
	WebURL() string
	SectionName() string
	PublishedAt() time.Time
	// ThumbnailURL returns an absolute image URL or "" when the article has none
	ThumbnailURL() string
}

// TrendingArticle is an item of a most viewed/shared/emailed list
type TrendingArticle struct {
	// ID is the provider's numeric article identifier
	ID int64 `json:"id"`

	// Title is the article headline
	Title string `json:"title"`

	// Abstract is a short summary of the article
	Abstract string `json:"abstract"`

	// URL is the canonical article URL
	URL string `json:"url"`

	// PublishedDate is the publication day, formatted as 2006-01-02
	PublishedDate string `json:"published_date"`

	// Section is the newspaper section (e.g., "U.S.", "Opinion")
	Section string `json:"section"`

	// Optional fields
	Subsection string  `json:"subsection,omitempty"`
	Byline     string  `json:"byline,omitempty"`
	Media      []Media `json:"media,omitempty"`
}

// Media is an image or video attached to a trending article
type Media struct {
	Type          string          `json:"type"`
	Subtype       string          `json:"subtype,omitempty"`
	Caption       string          `json:"caption,omitempty"`
	Copyright     string          `json:"copyright,omitempty"`
	MediaMetadata []MediaMetadata `json:"media-metadata"`
}

// MediaMetadata is one rendition of a media item
type MediaMetadata struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ArticleID returns the identifier as a string
func (a TrendingArticle) ArticleID() string {
	return formatInt(a.ID)
}

// Headline returns the article title
func (a TrendingArticle) Headline() string {
	return a.Title
}

// Summary returns the abstract
func (a TrendingArticle) Summary() string {
	return a.Abstract
}

// WebURL returns the article URL
func (a TrendingArticle) WebURL() string {
	return a.URL
}

// SectionName returns the section
func (a TrendingArticle) SectionName() string {
	return a.Section
}

// PublishedAt parses PublishedDate, returning the zero time when it is malformed
func (a TrendingArticle) PublishedAt() time.Time {
	return timeutil.ParseFlexibleTime(a.PublishedDate)
}

// ThumbnailURL returns the "Standard Thumbnail" rendition of the first media item
func (a TrendingArticle) ThumbnailURL() string {
	if len(a.Media) == 0 {
		return ""
	}
	for _, meta := range a.Media[0].MediaMetadata {
		if meta.Format == StandardThumbnailFormat {
			return meta.URL
		}
	}
	return ""
}
