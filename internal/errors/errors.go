// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMalformedLine indicates a log line without exactly three fields
	TypeMalformedLine Type = "MALFORMED_LINE"

	// TypeMalformedTimestamp indicates a timestamp outside the fixed format
	TypeMalformedTimestamp Type = "MALFORMED_TIMESTAMP"

	// TypeMalformedNumber indicates a phone number that is not a digit string
	TypeMalformedNumber Type = "MALFORMED_NUMBER"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeTariff indicates a tariff definition error
	TypeTariff Type = "TARIFF_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// MalformedLine reports a log line that did not split into three fields
func MalformedLine(line, fields int) *Error {
	return Newf(TypeMalformedLine, "line %d: expected 3 comma-separated fields, got %d", line, fields).
		WithContext("line", line)
}

// MalformedTimestamp reports a timestamp field outside the fixed format
func MalformedTimestamp(line int, field, value string, cause error) *Error {
	return Wrapf(TypeMalformedTimestamp, cause, "line %d: %s timestamp %q does not match dd-MM-yyyy HH:mm:ss", line, field, value).
		WithContext("line", line)
}

// MalformedNumber reports a phone number field that is not a digit string
func MalformedNumber(line int, value string) *Error {
	return Newf(TypeMalformedNumber, "line %d: phone number %q is not a digit string", line, value).
		WithContext("line", line)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Inputf creates a formatted input error
func Inputf(format string, args ...interface{}) *Error {
	return Newf(TypeInput, format, args...)
}

// Tariff creates a tariff definition error
func Tariff(message string, cause error) *Error {
	return Wrap(TypeTariff, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
