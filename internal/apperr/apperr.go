// Package apperr defines the status-carrying error values the service layer
// returns and the HTTP layer translates 1:1 onto responses.
package apperr

import "net/http"

type Error struct {
	Status  int    // HTTP status the handler should write
	Code    string // short machine-readable code, goes into the "error" field
	Message string // human text, goes into the "message" field
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(code, message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message}
}

// Conflict is a duplicate-resource rejection. It carries 400, not 409:
// the public API has always answered duplicate registrations with 400.
func Conflict(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "internal_error", Message: message}
}
