package supporters

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes failures at the fetch boundary
type ErrorType string

const (
	// ErrTypeConfiguration indicates a missing or malformed client setting
	ErrTypeConfiguration ErrorType = "configuration"

	// ErrTypeNetwork indicates the request never produced a response
	ErrTypeNetwork ErrorType = "network"

	// ErrTypeTimeout indicates the request exceeded its deadline
	ErrTypeTimeout ErrorType = "timeout"

	// ErrTypeStatus indicates a non-2xx HTTP response
	ErrTypeStatus ErrorType = "status"

	// ErrTypeDecode indicates a response body that is not a supporter list
	ErrTypeDecode ErrorType = "decode"
)

// FetchError describes why a supporter list could not be retrieved
type FetchError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *FetchError) Error() string {
	parts := []string{fmt.Sprintf("type=%s", e.Type)}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return "supporters: " + strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is matches any FetchError of the same type
func (e *FetchError) Is(target error) bool {
	if fe, ok := target.(*FetchError); ok {
		return e.Type == fe.Type
	}
	return false
}

// NewFetchError creates a fetch error without a cause
func NewFetchError(errType ErrorType, message string) *FetchError {
	return &FetchError{Type: errType, Message: message}
}

// NewFetchErrorWithCause creates a fetch error wrapping cause
func NewFetchErrorWithCause(errType ErrorType, message string, cause error) *FetchError {
	return &FetchError{Type: errType, Message: message, Cause: cause}
}

// NewStatusError creates an error for an unexpected HTTP status
func NewStatusError(statusCode int, body string) *FetchError {
	msg := "unexpected response status"
	if body = strings.TrimSpace(body); body != "" {
		msg = fmt.Sprintf("unexpected response status: %s", body)
	}
	return &FetchError{Type: ErrTypeStatus, Message: msg, StatusCode: statusCode}
}

// ErrorTypeOf returns the fetch error type carried by err, if any
func ErrorTypeOf(err error) (ErrorType, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Type, true
	}
	return "", false
}
