package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestRequestError(t *testing.T) {
	cause := New("connection refused")
	err := NewRequestError("list tasks", cause)

	if got := err.Error(); got != "list tasks: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, ErrBackendUnavailable) {
		t.Error("RequestError should match ErrBackendUnavailable")
	}
	if !Is(err, cause) {
		t.Error("RequestError should match its cause")
	}
	if Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		expected string
	}{
		{
			name:     "with server message",
			status:   http.StatusBadRequest,
			message:  "Task description is required",
			expected: "api error (status 400): Task description is required",
		},
		{
			name:     "without server message",
			status:   http.StatusBadGateway,
			message:  "",
			expected: "api error (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.status, tt.message)
			if got := err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAPIErrorNotFound(t *testing.T) {
	notFound := NewAPIError(http.StatusNotFound, "Task not found")
	if !Is(notFound, ErrTaskNotFound) {
		t.Error("404 APIError should match ErrTaskNotFound")
	}
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should report true for 404")
	}

	serverErr := NewAPIError(http.StatusInternalServerError, "boom")
	if Is(serverErr, ErrTaskNotFound) {
		t.Error("500 APIError should not match ErrTaskNotFound")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("description", "description is required")
	want := "validation failed [description]: description is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := NewValidationError("", "bad input")
	if got := bare.Error(); got != "validation failed: bad input" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationErrorMatchesEmptyDescription(t *testing.T) {
	err := NewValidationError("description", "Please enter a task description")
	if !Is(err, ErrEmptyDescription) {
		t.Error("description rejection should match ErrEmptyDescription")
	}

	other := NewValidationError("priority", "must be non-negative")
	if Is(other, ErrEmptyDescription) {
		t.Error("non-description rejection should not match ErrEmptyDescription")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{
			name:      "transport failure is retryable",
			err:       NewRequestError("status", New("timeout")),
			retryable: true,
		},
		{
			name:      "wrapped transport failure is retryable",
			err:       fmt.Errorf("refresh: %w", NewRequestError("status", New("timeout"))),
			retryable: true,
		},
		{
			name:      "server error is retryable",
			err:       NewAPIError(http.StatusServiceUnavailable, ""),
			retryable: true,
		},
		{
			name:      "client error is not retryable",
			err:       NewAPIError(http.StatusBadRequest, "bad"),
			retryable: false,
		},
		{
			name:      "validation error is not retryable",
			err:       NewValidationError("description", "required"),
			retryable: false,
		},
		{
			name:      "plain error is not retryable",
			err:       New("something"),
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "api error passes server message through",
			err:      NewAPIError(http.StatusBadRequest, "Task description is required"),
			expected: "Task description is required",
		},
		{
			name:     "api error without message uses fallback",
			err:      NewAPIError(http.StatusBadGateway, ""),
			expected: "fallback",
		},
		{
			name:     "validation message passes through",
			err:      NewValidationError("description", "Please enter a task description"),
			expected: "Please enter a task description",
		},
		{
			name:     "transport error uses fallback",
			err:      NewRequestError("create task", New("connection refused")),
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, "fallback"); got != tt.expected {
				t.Errorf("UserMessage = %q, want %q", got, tt.expected)
			}
		})
	}
}
