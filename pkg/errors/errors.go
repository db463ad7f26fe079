// Package errors provides custom error types for the addrename system.
// These errors let the CLI tell fatal input, credential, and connectivity
// failures apart from per-object rename failures that a run tolerates.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the addrename system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthentication indicates that the device rejected the supplied credentials
	ErrAuthentication = errors.New("authentication failed")

	// ErrConnection indicates that the device could not be reached at all
	ErrConnection = errors.New("connection failed")

	// ErrAPI indicates that the device answered with an error status
	ErrAPI = errors.New("api error")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrNotFound indicates that a requested scope or object was not found
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a malformed desired-rename record or flag value.
type ValidationError struct {
	Line    int
	Content string
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("validation failed on line %d (%q): %s", e.Line, e.Content, e.Message)
	case e.Field != "":
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewLineError creates a new ValidationError for one input line.
func NewLineError(line int, content, message string) *ValidationError {
	return &ValidationError{Line: line, Content: content, Message: message}
}

// AuthenticationError represents a rejected keygen or API key.
type AuthenticationError struct {
	Host    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error for %s: %s", e.Host, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// ConnectionError represents a transport failure talking to the device.
type ConnectionError struct {
	Host string
	Err  error
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Host, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// APIError represents a PAN-OS response whose status is not success.
type APIError struct {
	Action     string // "keygen", "get", "rename", "op"
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request rejected"
	}
	if e.StatusCode != 0 && e.StatusCode != 200 {
		return fmt.Sprintf("API error during %s (status %d): %s", e.Action, e.StatusCode, msg)
	}
	if e.Code != "" {
		return fmt.Sprintf("API error during %s (code %s): %s", e.Action, e.Code, msg)
	}
	return fmt.Sprintf("API error during %s: %s", e.Action, msg)
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	// PAN-OS answers 403 with code 403 for an invalid or expired key
	return target == ErrAuthentication && (e.StatusCode == 403 || e.Code == "403")
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "xml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAuthentication checks if an error means the credentials were rejected
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsConnection checks if an error means the device was unreachable
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapConnection wraps a transport error as a ConnectionError
func WrapConnection(host string, err error) error {
	if err == nil {
		return nil
	}
	return &ConnectionError{Host: host, Err: err}
}
