// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the dictionary has no entry for the searched
// term. It is an expected outcome, not a bug; Title carries the page title
// so callers can display it alongside the miss.
type NotFoundError struct {
	Title string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dictionary entry: %s", e.Title)
}

// ParseError reports a structural mismatch between the expected and the
// actual document shape (missing title, missing results container). It is
// fatal for the invocation; no partial result accompanies it.
type ParseError struct {
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Reason)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NetworkError represents a connection, DNS, or timeout failure while
// fetching a page
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError represents a non-success HTTP status from the dictionary
// server
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError
func IsHTTPStatus(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// IsFetch checks if an error originated in the fetch layer, covering both
// transport failures and non-success statuses
func IsFetch(err error) bool {
	return IsNetwork(err) || IsHTTPStatus(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
