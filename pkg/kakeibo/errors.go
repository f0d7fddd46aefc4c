package kakeibo

import "fmt"

// APIError represents an error response from the kakeibo API.
// It carries the HTTP status code and the server-reported message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kakeibo API error (status %d): %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates an invalid or expired API key (HTTP 401).
type AuthenticationError struct {
	APIError
}

// Unwrap exposes the underlying APIError so errors.As can match
// both *AuthenticationError and *APIError.
func (e *AuthenticationError) Unwrap() error {
	return &e.APIError
}

func newAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{APIError{StatusCode: 401, Message: message}}
}

// DecodeError indicates a success response that is missing a required field.
// It signals a contract mismatch between client and server, not a business failure.
type DecodeError struct {
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kakeibo: response missing required field %q", e.Field)
}
