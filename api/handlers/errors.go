// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"dle-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific error types
	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsHTTPStatus(err) {
		if statusErr, ok := err.(*errors.HTTPStatusError); ok {
			// Map dictionary site status codes to our API status codes
			switch {
			case statusErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by the dictionary site")
			case statusErr.StatusCode >= 500:
				return huma.Error502BadGateway("Dictionary site error", err)
			default:
				return huma.Error502BadGateway("Unexpected dictionary response", err)
			}
		}
	}

	if errors.IsNetwork(err) {
		return huma.Error503ServiceUnavailable("Dictionary site unreachable", err)
	}

	if errors.IsParse(err) {
		return huma.Error502BadGateway("Dictionary page could not be parsed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
