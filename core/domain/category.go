// ABOUTME: Category and period value types for most popular lists
// ABOUTME: Provides display names and validation helpers used by presentation menus

package domain

import "strings"

// Category selects which most popular list is fetched
type Category string

const (
	CategoryMostViewed  Category = "viewed"
	CategoryMostShared  Category = "shared"
	CategoryMostEmailed Category = "emailed"
)

// AllCategories lists every category in menu order
var AllCategories = []Category{CategoryMostViewed, CategoryMostShared, CategoryMostEmailed}

// DisplayName returns the human-readable menu title
func (c Category) DisplayName() string {
	switch c {
	case CategoryMostViewed:
		return "Most Viewed"
	case CategoryMostShared:
		return "Most Shared"
	case CategoryMostEmailed:
		return "Most Emailed"
	default:
		return string(c)
	}
}

// IsValid reports whether c is one of the provider's categories
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts either the raw value ("viewed") or the long form ("most-viewed")
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "most-")
	s = strings.TrimPrefix(s, "most_")
	c := Category(s)
	return c, c.IsValid()
}

// Period is a most popular window in days
type Period int

const (
	PeriodDay   Period = 1
	PeriodWeek  Period = 7
	PeriodMonth Period = 30

	// DefaultPeriod is used until the user picks another period
	DefaultPeriod = PeriodWeek
)

// AllPeriods lists every period in menu order
var AllPeriods = []Period{PeriodDay, PeriodWeek, PeriodMonth}

// IsValid reports whether p is one of 1, 7 or 30
func (p Period) IsValid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth
}

// DisplayName returns the menu title, e.g. "7 Days"
func (p Period) DisplayName() string {
	if p == PeriodDay {
		return "1 Day"
	}
	return formatInt(int64(p)) + " Days"
}

// IsSearchable reports whether text may be submitted as a search query
func IsSearchable(text string) bool {
	return strings.TrimSpace(text) != ""
}
