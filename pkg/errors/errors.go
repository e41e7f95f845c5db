// Package errors provides structured error types for the spiget client.
//
// Error codes let callers tell apart the three failure families of the
// client without string matching:
//   - INVALID_*: input rejected before any request was sent
//   - NOT_FOUND / HTTP_STATUS: the API answered with a non-2xx status
//   - DECODE_ERROR: the body (or a base64 field) could not be decoded
//
// Transport errors (DNS, connect, timeout) are never wrapped by the client;
// they reach the caller exactly as net/http produced them.
//
// # Usage
//
//	res, err := api.Resources.Details(ctx, 1234)
//	switch {
//	case errors.Is(err, errors.ErrCodeNotFound):
//	    // resource does not exist
//	case errors.Is(err, errors.ErrCodeDecode):
//	    // unexpected JSON shape
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidField Code = "INVALID_SEARCH_FIELD"
	ErrCodeInvalidQuery Code = "INVALID_QUERY"

	// Responses outside the 2xx range
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeHTTPStatus  Code = "HTTP_STATUS"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Payload errors
	ErrCodeDecode Code = "DECODE_ERROR"

	// Local failures (cache backends, config)
	ErrCodeCache    Code = "CACHE_ERROR"
	ErrCodeConfig   Code = "CONFIG_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if se := AsStatus(err); se != nil && se.Message != "" {
			return fmt.Sprintf("%s (%s)", e.Message, se.Message)
		}
		return e.Message
	}
	return err.Error()
}

// StatusError carries the status line of a non-2xx API response.
// Spiget reports failures as {"error": "..."}; Message holds that text
// when the body had one.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// Code returns the error code matching the status.
func (e *StatusError) Code() Code {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimited
	default:
		return ErrCodeHTTPStatus
	}
}

// FromStatus builds the *Error reported for a non-2xx response to what.
func FromStatus(status int, message, what string) *Error {
	se := &StatusError{StatusCode: status, Message: message}
	return Wrap(se.Code(), se, "GET %s", what)
}

// AsStatus returns the *StatusError in err's chain, or nil.
func AsStatus(err error) *StatusError {
	var se *StatusError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
