// ABOUTME: Errors returned while building and using the articles client
// ABOUTME: Option and config problems carry the offending field so callers can report it

package client

import (
	"errors"
	"fmt"
)

// ErrorType separates bad option values from an unusable setup
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error is returned by New and by options that reject their argument
type Error struct {
	Type    ErrorType
	Field   string
	Value   interface{}
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func validationError(field string, value interface{}, message string) *Error {
	return &Error{Type: ErrorTypeValidation, Field: field, Value: value, Message: message}
}

func configurationError(message string, cause error) *Error {
	return &Error{Type: ErrorTypeConfiguration, Message: message, Cause: cause}
}

var (
	// ErrClientClosed is returned by NewFeedController after Close
	ErrClientClosed = errors.New("articles client is closed")

	// ErrNoAPIKey is returned when neither a provider nor an API key is configured
	ErrNoAPIKey = configurationError("no NYT API key configured", nil)
)

// IsValidationError reports whether err comes from a rejected option value
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsConfigurationError reports whether err means the client cannot be built
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}
