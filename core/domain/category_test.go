package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Most Viewed", CategoryMostViewed.DisplayName())
	assert.Equal(t, "Most Shared", CategoryMostShared.DisplayName())
	assert.Equal(t, "Most Emailed", CategoryMostEmailed.DisplayName())
	assert.Equal(t, "other", Category("other").DisplayName())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{"viewed", CategoryMostViewed, true},
		{"most-shared", CategoryMostShared, true},
		{" MOST_EMAILED ", CategoryMostEmailed, true},
		{"liked", Category("liked"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestPeriod(t *testing.T) {
	for _, p := range AllPeriods {
		assert.True(t, p.IsValid(), "period %d", p)
	}
	assert.False(t, Period(14).IsValid())
	assert.Equal(t, PeriodWeek, DefaultPeriod)
	assert.Equal(t, "1 Day", PeriodDay.DisplayName())
	assert.Equal(t, "30 Days", PeriodMonth.DisplayName())
}

func TestIsSearchable(t *testing.T) {
	assert.False(t, IsSearchable(""))
	assert.False(t, IsSearchable("   \n\t"))
	assert.True(t, IsSearchable("test"))
}

func TestFeedState_CloneDoesNotShareItems(t *testing.T) {
	state := FeedState{Items: TrendingItems([]TrendingArticle{{ID: 1}})}
	clone := state.Clone()
	clone.Items[0] = TrendingArticle{ID: 2}

	assert.Equal(t, "1", state.Items[0].ArticleID())
}
