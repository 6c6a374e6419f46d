// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperror defines the domain error type used across the API.
// Stores reject with an *Error carrying an HTTP status and a client-safe
// message; the handlers' error pipeline echoes both verbatim. Errors that
// are not an *Error are classified by the pipeline instead (database
// errors, unknown failures).
package apperror

import "net/http"

// Error is a domain error with an explicit HTTP status and message.
// The message is safe to return to the client as-is.
type Error struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Msg }

// NotFound returns a 404 domain error.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// BadRequest returns a 400 domain error.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}
