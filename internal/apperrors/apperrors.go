// Package apperrors defines the domain error kinds shared by services and
// handlers. Each kind carries the HTTP status it maps to; the handlers are
// the only place that turns the status hint into a wire response.
package apperrors

import (
	"errors"
	"net/http"
	"strings"
)

// Error is a domain error with an HTTP status hint.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed or out-of-range input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// BadRequest reports a business-rule violation (400).
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound reports a missing entity (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a uniqueness violation (409).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal reports an unexpected failure (500). The message is safe to show
// to clients; the underlying cause stays in the logs.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// StatusOf returns the HTTP status hint for err, or 500 for errors that do
// not carry one.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsAppError reports whether err is (or wraps) a domain error kind.
func IsAppError(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}

// IsUniqueViolation reports whether err is a storage-engine uniqueness
// constraint failure. The engine's constraint is the authoritative uniqueness
// signal; services upgrade matches to Conflict.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
