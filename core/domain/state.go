// ABOUTME: Feed state snapshot published by the feed controller
// ABOUTME: Models the current mode, loading phase, items and last error

package domain

// ModeKind distinguishes the two feed modes
type ModeKind int

const (
	// ModeNone means no configuration call has been made yet
	ModeNone ModeKind = iota
	ModeTrending
	ModeSearch
)

// String returns a short name for logging
func (k ModeKind) String() string {
	switch k {
	case ModeTrending:
		return "trending"
	case ModeSearch:
		return "search"
	default:
		return "none"
	}
}

// Mode is the active feed configuration.
// Category and Period are meaningful for ModeTrending, Query for ModeSearch.
type Mode struct {
	Kind     ModeKind
	Category Category
	Period   Period
	Query    string
}

// Phase is the fetch lifecycle of a feed
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns a short name for logging
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FeedState is an immutable snapshot of a feed.
// Items are all TrendingArticle in ModeTrending and all SearchArticle in ModeSearch.
type FeedState struct {
	Mode      Mode
	Items     []Article
	IsLoading bool
	LastError string
	Phase     Phase
}

// HasError reports whether the last fetch failed
func (s FeedState) HasError() bool {
	return s.LastError != ""
}

// Clone returns a copy whose Items slice is not shared with s
func (s FeedState) Clone() FeedState {
	out := s
	if s.Items != nil {
		out.Items = make([]Article, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// TrendingItems converts a provider result into feed items, preserving order
func TrendingItems(articles []TrendingArticle) []Article {
	items := make([]Article, len(articles))
	for i, a := range articles {
		items[i] = a
	}
	return items
}

// SearchItems converts a provider result into feed items, preserving order
func SearchItems(articles []SearchArticle) []Article {
	items := make([]Article, len(articles))
	for i, a := range articles {
		items[i] = a
	}
	return items
}
