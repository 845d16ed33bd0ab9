// Package errors provides centralized error definitions and error handling
// utilities for the taskdeck codebase. It defines the error taxonomy of the
// console: transport failures, non-success API responses, and client-side
// validation failures.
//
// # Error Types
//
//   - RequestError: the backend could not be reached (network/transport)
//   - APIError: the backend answered with a non-success status
//   - ValidationError: input was rejected before any network call
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewAPIError(http.StatusNotFound, "Task not found")
//	err := errors.NewValidationError("description", "description is required")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTaskNotFound) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for well-known backend conditions.
var (
	// ErrTaskNotFound indicates that a task could not be found on the backend.
	ErrTaskNotFound = New("task not found")
	// ErrBackendUnavailable indicates that the backend could not be reached.
	ErrBackendUnavailable = New("backend unavailable")
	// ErrEmptyDescription indicates that a task was submitted without a description.
	ErrEmptyDescription = New("task description is required")
)

// RequestError represents a transport-level failure: the request never
// produced a decodable response. These are always retryable.
type RequestError struct {
	Op    string // short operation name, e.g. "list tasks"
	cause error
}

// NewRequestError creates a RequestError wrapping the transport cause.
func NewRequestError(op string, cause error) *RequestError {
	return &RequestError{Op: op, cause: cause}
}

// Error returns the formatted error message.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.cause)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.cause
}

// Is reports whether the target matches this error. All RequestErrors match
// ErrBackendUnavailable.
func (e *RequestError) Is(target error) bool {
	if target == ErrBackendUnavailable {
		return true
	}
	return errors.Is(e.cause, target)
}

// APIError represents a non-success HTTP response from the backend. Message
// carries the server-provided error string when the body was decodable.
type APIError struct {
	StatusCode int
	Message    string
}

// NewAPIError creates an APIError from a status code and server message.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Is reports whether the target matches this error. 404 responses match
// ErrTaskNotFound so callers can branch without inspecting status codes.
func (e *APIError) Is(target error) bool {
	return target == ErrTaskNotFound && e.StatusCode == http.StatusNotFound
}

// ValidationError represents input rejected before any network call was made.
// Its message is always safe to surface to the user.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for a named input field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed [%s]: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is reports whether the target matches this error. Description-field
// rejections match ErrEmptyDescription so callers can branch without
// inspecting field names.
func (e *ValidationError) Is(target error) bool {
	return target == ErrEmptyDescription && e.Field == "description"
}

// IsRetryable returns true for transient errors where the operation may
// succeed on retry: transport failures and 5xx responses.
func IsRetryable(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// IsNotFound returns true when the error represents a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}

// UserMessage extracts a message safe to show in the UI. Server-provided
// messages and validation messages pass through; everything else collapses
// to the fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	return fallback
}
