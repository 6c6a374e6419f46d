// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers for the board game review
// API. Handlers extract request input, invoke a single store method, wrap
// the result in the response envelope, and forward every error unchanged
// to the shared error pipeline in writeError.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"houseofgames/internal/apperror"
)

// Postgres "invalid text representation", raised when a malformed id
// reaches an integer column comparison.
const pgInvalidTextRepresentation = "22P02"

// writeJSON serializes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError is the ordered error classifier chain. Classifiers are tried
// in sequence and the first match terminates:
//
//  1. domain error — status and message echoed verbatim
//  2. database type error — uniform 400 "bad request: invalid id type"
//  3. anything else — 500, logged server-side, never leaked
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, map[string]string{"msg": appErr.Msg})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "bad request: invalid id type"})
		return
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"msg": "internal server error"})
}
