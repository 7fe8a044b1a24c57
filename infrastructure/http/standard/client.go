// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Performs single-attempt GET requests for article and thumbnail downloads

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"articles-app-core/core/interfaces"
)

const defaultUserAgent = "ArticlesCore/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
}

// WithUserAgent returns a copy of the client that sends ua
func (c *StandardHTTPClient) WithUserAgent(ua string) *StandardHTTPClient {
	clone := *c
	if ua != "" {
		clone.userAgent = ua
	}
	return &clone
}

// Get performs an HTTP GET request. Non-2xx answers are returned as
// responses, not errors; the caller decides what a status means.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
