// cmd/credlens/errors.go
package main

import (
	"fmt"
)

// ErrorType categorizes pipeline failures
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"    // empty, too short, non-textual content
	ErrorTypeFetch    ErrorType = "fetch"    // URL unreachable or non-success status
	ErrorTypeAdapter  ErrorType = "adapter"  // optional remote call failed
	ErrorTypePipeline ErrorType = "pipeline" // unexpected failure during fusion
)

// CredError is the application error type. Input and fetch errors are
// surfaced to the user as verdict=ERROR; adapter errors are contained
// at the adapter boundary and never escape it.
type CredError struct {
	Type    ErrorType
	Message string
	Inner   error
}

func (e *CredError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *CredError) Unwrap() error {
	return e.Inner
}

// NewInputError creates an input validation error with a user-facing message
func NewInputError(message string) *CredError {
	return &CredError{Type: ErrorTypeInput, Message: message}
}

// NewFetchError creates a fetch error; status is included in the message
func NewFetchError(message string, inner error) *CredError {
	return &CredError{Type: ErrorTypeFetch, Message: message, Inner: inner}
}

// NewAdapterError creates an adapter error for logging at the boundary
func NewAdapterError(message string, inner error) *CredError {
	return &CredError{Type: ErrorTypeAdapter, Message: message, Inner: inner}
}

// NewPipelineError wraps an unexpected failure during fusion
func NewPipelineError(message string, inner error) *CredError {
	return &CredError{Type: ErrorTypePipeline, Message: message, Inner: inner}
}

// IsUserError reports whether the error should surface as verdict=ERROR
// rather than an HTTP 500.
func IsUserError(err error) bool {
	ce, ok := err.(*CredError)
	if !ok {
		return false
	}
	return ce.Type == ErrorTypeInput || ce.Type == ErrorTypeFetch
}
