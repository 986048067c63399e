// Package errors defines the structured error type shared by the stanza
// CLI and tooling layers. Core packages (html, query) keep their own
// sentinel errors; this package wraps failures that cross command
// boundaries with a category, a stable code, and optional context.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes an error for handling and presentation.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeGenerate   ErrorType = "generate"
	ErrorTypeSite       ErrorType = "site"
	ErrorTypeInternal   ErrorType = "internal"
)

// Stable error codes used across commands.
const (
	CodeInvalidName     = "ERR_INVALID_NAME"
	CodePathTraversal   = "ERR_PATH_TRAVERSAL"
	CodeConfigInvalid   = "ERR_CONFIG_INVALID"
	CodeTemplateMissing = "ERR_TEMPLATE_MISSING"
	CodeWriteFailed     = "ERR_WRITE_FAILED"
	CodeBuildFailed     = "ERR_BUILD_FAILED"
	CodeInternal        = "ERR_INTERNAL"
)

// StanzaError is a structured error with category, code, and context.
type StanzaError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StanzaError) Error() string {
	var parts []string
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause.
func (e *StanzaError) Unwrap() error { return e.Cause }

// Is matches on type and code so call sites can compare against a template
// error value.
func (e *StanzaError) Is(target error) bool {
	var t *StanzaError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext attaches a key/value pair to the error.
func (e *StanzaError) WithContext(key string, value any) *StanzaError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *StanzaError {
	return &StanzaError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *StanzaError {
	return &StanzaError{Type: ErrorTypeConfig, Code: code, Message: message}
}

// NewIOError creates an I/O error wrapping its cause.
func NewIOError(code, message string, cause error) *StanzaError {
	return &StanzaError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewGenerateError creates a scaffolding/generation error.
func NewGenerateError(code, message string, cause error) *StanzaError {
	return &StanzaError{Type: ErrorTypeGenerate, Code: code, Message: message, Cause: cause}
}

// NewSiteError creates a site-build error.
func NewSiteError(code, message string, cause error) *StanzaError {
	return &StanzaError{Type: ErrorTypeSite, Code: code, Message: message, Cause: cause}
}

// NewInternalError creates an internal error wrapping its cause.
func NewInternalError(message string, cause error) *StanzaError {
	return &StanzaError{Type: ErrorTypeInternal, Code: CodeInternal, Message: message, Cause: cause}
}

// IsType reports whether err is a StanzaError of the given type.
func IsType(err error, t ErrorType) bool {
	var se *StanzaError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}
