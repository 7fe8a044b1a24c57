// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for provider failures and human-readable fetch messages

package errors

import (
	"context"
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-2xx answer from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// DecodeError represents a response body that could not be decoded
type DecodeError struct {
	API string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.API, e.Err)
}

// Unwrap returns the underlying decoding error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FetchError is the single failure class surfaced by the feed controller.
// Op names the request ("trending" or "search").
type FetchError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s fetch failed", e.Op)
	}
	return fmt.Sprintf("%s fetch failed: %v", e.Op, e.Err)
}

// Unwrap returns the provider error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Message turns err into text suitable for an alert.
// The result is never empty for a non-nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *ExternalAPIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return fmt.Sprintf("The article service returned an error (%d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Sprintf("The article service returned an error (%d).", apiErr.StatusCode)
	case IsDecode(err):
		return "The article service sent a response that could not be read."
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Failed to load articles."
}
