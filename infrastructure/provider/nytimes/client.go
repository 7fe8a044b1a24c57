// ABOUTME: New York Times article provider for the most popular and article search APIs
// ABOUTME: Decodes responses into domain articles and caches raw bodies for a short TTL

package nytimes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"articles-app-core/core/domain"
	coreerrors "articles-app-core/core/errors"
	"articles-app-core/core/interfaces"
	"articles-app-core/pkg/utils/html"
)

const (
	// DefaultBaseURL is the root of the public NYT APIs
	DefaultBaseURL = "https://api.nytimes.com/svc"

	apiMostPopular   = "mostpopular"
	apiArticleSearch = "articlesearch"

	maxResponseBytes = 8 << 20
)

// Config holds provider settings
type Config struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
}

// Client implements interfaces.ArticleProvider against the NYT APIs.
// deps.HTTPClient is required; deps.Cache and deps.Logger are optional.
type Client struct {
	deps    interfaces.Dependencies
	baseURL string
	apiKey  string
	ttl     time.Duration
}

// New validates cfg and creates a provider
func New(deps interfaces.Dependencies, cfg Config) (*Client, error) {
	if deps.HTTPClient == nil {
		return nil, &coreerrors.ValidationError{Field: "HTTPClient", Message: "is required"}
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &coreerrors.ValidationError{Field: "APIKey", Message: "is required"}
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || !parsed.IsAbs() {
		return nil, &coreerrors.ValidationError{Field: "BaseURL", Message: fmt.Sprintf("not an absolute URL: %q", cfg.BaseURL)}
	}

	return &Client{
		deps:    deps,
		baseURL: base,
		apiKey:  cfg.APIKey,
		ttl:     cfg.CacheTTL,
	}, nil
}

// mostPopularResponse is the envelope of the most popular API
type mostPopularResponse struct {
	Status     string                   `json:"status"`
	NumResults int                      `json:"num_results"`
	Results    []domain.TrendingArticle `json:"results"`
}

// searchResponse is the envelope of the article search API
type searchResponse struct {
	Status   string `json:"status"`
	Response struct {
		Docs []domain.SearchArticle `json:"docs"`
	} `json:"response"`
}

// apiErrorBody covers the error payload shapes the NYT gateway returns
type apiErrorBody struct {
	Fault struct {
		FaultString string `json:"faultstring"`
	} `json:"fault"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// FetchTrending returns the most viewed, shared or emailed articles
func (c *Client) FetchTrending(ctx context.Context, category domain.Category, period domain.Period) ([]domain.TrendingArticle, error) {
	if !category.IsValid() {
		return nil, &coreerrors.ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", category)}
	}
	if !period.IsValid() {
		return nil, &coreerrors.ValidationError{Field: "period", Message: fmt.Sprintf("unsupported period %d", period)}
	}

	endpoint := fmt.Sprintf("%s/mostpopular/v2/%s/%d.json?%s",
		c.baseURL, category, period, url.Values{"api-key": {c.apiKey}}.Encode())
	cacheKey := fmt.Sprintf("%s:%s:%d", apiMostPopular, category, period)

	var resp mostPopularResponse
	if err := c.getJSON(ctx, apiMostPopular, endpoint, cacheKey, &resp); err != nil {
		return nil, err
	}

	articles := resp.Results
	if articles == nil {
		articles = []domain.TrendingArticle{}
	}
	for i := range articles {
		articles[i].Title = html.StripHTML(articles[i].Title)
		articles[i].Abstract = html.StripHTML(articles[i].Abstract)
	}
	return articles, nil
}

// Search returns one page of article search results
func (c *Client) Search(ctx context.Context, query string, page int) ([]domain.SearchArticle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "must not be blank"}
	}
	if page < 0 {
		page = 0
	}

	params := url.Values{
		"q":       {query},
		"page":    {strconv.Itoa(page)},
		"api-key": {c.apiKey},
	}
	endpoint := fmt.Sprintf("%s/search/v2/articlesearch.json?%s", c.baseURL, params.Encode())
	cacheKey := fmt.Sprintf("%s:%d:%s", apiArticleSearch, page, strings.ToLower(query))

	var resp searchResponse
	if err := c.getJSON(ctx, apiArticleSearch, endpoint, cacheKey, &resp); err != nil {
		return nil, err
	}

	docs := resp.Response.Docs
	if docs == nil {
		docs = []domain.SearchArticle{}
	}
	for i := range docs {
		docs[i].Snippet = html.StripHTML(docs[i].Snippet)
		docs[i].LeadParagraph = html.StripHTML(docs[i].LeadParagraph)
		docs[i].Abstract = html.StripHTML(docs[i].Abstract)
		docs[i].Title.Main = html.StripHTML(docs[i].Title.Main)
	}
	return docs, nil
}

// getJSON fetches endpoint, serving and filling the response cache, and
// decodes the body into out
func (c *Client) getJSON(ctx context.Context, api, endpoint, cacheKey string, out interface{}) error {
	if body, ok := c.cached(ctx, cacheKey); ok {
		if err := json.Unmarshal(body, out); err == nil {
			c.debug("Serving cached response", map[string]interface{}{"api": api, "key": cacheKey})
			return nil
		}
		_ = c.deps.Cache.Delete(ctx, cacheKey)
	}

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return coreerrors.WrapError(err, fmt.Sprintf("%s request failed", api))
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return coreerrors.WrapError(err, fmt.Sprintf("failed to read %s response", api))
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		apiErr := &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(body),
			API:        api,
		}
		c.warn("Article API returned an error", map[string]interface{}{
			"api":    api,
			"status": resp.StatusCode(),
			"error":  apiErr.Message,
		})
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &coreerrors.DecodeError{API: api, Err: err}
	}

	c.store(ctx, cacheKey, body)
	return nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.deps.Cache == nil || c.ttl <= 0 {
		return nil, false
	}
	body, err := c.deps.Cache.Get(ctx, key)
	if err != nil || len(body) == 0 {
		return nil, false
	}
	return body, true
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	if c.deps.Cache == nil || c.ttl <= 0 {
		return
	}
	if err := c.deps.Cache.Set(ctx, key, body, c.ttl); err != nil {
		c.debug("Failed to cache response", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// errorMessage extracts the gateway's explanation from an error body
func errorMessage(body []byte) string {
	var payload apiErrorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Fault.FaultString != "":
		return payload.Fault.FaultString
	case payload.Message != "":
		return payload.Message
	case len(payload.Errors) > 0:
		return strings.Join(payload.Errors, "; ")
	}
	return ""
}

func (c *Client) debug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Client) warn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}
