package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// Both the article provider and the image loader go through it, so tests
// can serve canned bodies without a network.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response or an error if the request could not be made.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Header names are case-insensitive.
	Header(key string) string
}
