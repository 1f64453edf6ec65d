package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a stable error code for programmatic handling.
type Code string

const (
	CodeUnknown      Code = "unknown"
	CodeInvalid      Code = "invalid"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
	CodeUnavailable  Code = "unavailable"
)

// AppError is a structured error type that carries a code, message, and optional metadata.
type AppError struct {
	Code    Code
	Message string
	Err     error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *AppError) Unwrap() error { return e.Err }

// WithMeta attaches metadata to the error.
func (e *AppError) WithMeta(k string, v any) *AppError {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[k] = v
	return e
}

// New creates a new AppError with code and message.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with code and message.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode checks if an error has the provided code (through unwrapping).
func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Validation builds an invalid-input error naming every failing field, so a
// form can surface all of them at once. The field list is kept in Meta under
// "fields".
func Validation(fields ...string) *AppError {
	e := New(CodeInvalid, fmt.Sprintf("%s required", strings.Join(fields, ", ")))
	return e.WithMeta("fields", fields)
}

// NotFound builds a not-found error for the named entity.
func NotFound(entity string) *AppError {
	return New(CodeNotFound, entity+" not found")
}

// Unavailable wraps a store or transport failure. Callers may retry; the
// server never does.
func Unavailable(err error, message string) *AppError {
	return Wrap(err, CodeUnavailable, message)
}

// ValidationFields extracts the failing field names from a validation error,
// or nil when err is not one.
func ValidationFields(err error) []string {
	var ae *AppError
	if !errors.As(err, &ae) || ae.Code != CodeInvalid || ae.Meta == nil {
		return nil
	}
	if fs, ok := ae.Meta["fields"].([]string); ok {
		return fs
	}
	return nil
}
