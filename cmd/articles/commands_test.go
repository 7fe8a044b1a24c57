package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-app-core/core/domain"
)

func execute(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, "articles dev")
}

func TestTrendingCommand_RejectsBadArguments(t *testing.T) {
	_, err := execute("trending", "clicked")
	assert.ErrorContains(t, err, `unknown category "clicked"`)

	_, err = execute("trending", "viewed", "--period", "14")
	assert.ErrorContains(t, err, "period must be 1, 7 or 30")

	_, err = execute("trending", "viewed", "shared")
	assert.Error(t, err)
}

func TestSearchCommand_RejectsBlankQuery(t *testing.T) {
	_, err := execute("search", "   ")
	assert.ErrorContains(t, err, "cannot be blank")

	_, err = execute("search")
	assert.Error(t, err)
}

func TestPrintFeed(t *testing.T) {
	state := domain.FeedState{
		Mode: domain.Mode{Kind: domain.ModeTrending, Category: domain.CategoryMostViewed, Period: domain.PeriodWeek},
		Items: domain.TrendingItems([]domain.TrendingArticle{{
			ID:            1,
			Title:         "7-Day Article",
			Abstract:      "Summary text.",
			URL:           "https://www.nytimes.com/a.html",
			PublishedDate: "2024-05-01",
			Section:       "U.S.",
		}}),
		Phase: domain.PhaseLoaded,
	}

	var out bytes.Buffer
	printFeed(&out, state)

	text := out.String()
	assert.Contains(t, text, "Most Viewed · 7 Days · 1 articles")
	assert.Contains(t, text, "  1. 7-Day Article")
	assert.Contains(t, text, "U.S. · May 1, 2024")
	assert.Contains(t, text, "Summary text.")
	assert.Contains(t, text, "https://www.nytimes.com/a.html")
}

func TestPrintFeed_Search(t *testing.T) {
	state := domain.FeedState{
		Mode:  domain.Mode{Kind: domain.ModeSearch, Query: "test"},
		Items: domain.SearchItems([]domain.SearchArticle{{ID: "x", Title: domain.SearchHeadline{Main: "Test Headline"}}}),
	}

	var out bytes.Buffer
	printFeed(&out, state)

	assert.Contains(t, out.String(), `Search "test" · 1 articles`)
	assert.Contains(t, out.String(), "Test Headline")
	assert.Contains(t, out.String(), "General")
}
