package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Quiz generation errors
	ErrValidation    ErrorCode = "VALIDATION_ERROR"
	ErrConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrUpstream      ErrorCode = "UPSTREAM_ERROR"
	ErrEmptyResponse ErrorCode = "EMPTY_RESPONSE"
	ErrStorage       ErrorCode = "STORAGE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Details,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewValidationError(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(ErrConfiguration, message, nil)
}

// NewUpstreamError wraps a non-2xx (or failed) completion API call.
// statusCode is 0 when the request never produced an HTTP response.
func NewUpstreamError(statusCode int, body string, cause error) *DomainError {
	e := NewError(ErrUpstream, "Completion API request failed", cause)
	e.Details = map[string]interface{}{
		"status_code": statusCode,
		"body":        body,
	}
	return e
}

func NewEmptyResponseError() *DomainError {
	return NewError(ErrEmptyResponse, "Completion API returned an empty response", nil)
}

func NewStorageError(message string, cause error) *DomainError {
	return NewError(ErrStorage, message, cause)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(ErrInternal, message, cause)
}
