package api

import (
	"encoding/json"
	"fmt"
)

// genericErrorMessage is used when an error response carries no detail body.
const genericErrorMessage = "the server reported an error"

// APIError represents an error returned by the Taskflow API.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Detail)
}

// Message returns the human-readable detail, suitable for the status line.
func (e *APIError) Message() string {
	return e.Detail
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsBadRequest returns true if the error is a 400 Bad Request error.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == 400
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}

// newAPIError builds an APIError from a non-success response body.
// The server sends {"detail": "..."}; anything else falls back to a
// generic message.
func newAPIError(statusCode int, body []byte) *APIError {
	detail := genericErrorMessage

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}
