// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"houseofgames/internal/models"
	"houseofgames/internal/store"
)

// Users groups handlers for the users resource.
type Users struct {
	users *store.UserStore
}

// NewUsers creates a new Users handler group.
func NewUsers(users *store.UserStore) *Users {
	return &Users{users: users}
}

// List serves GET /api/users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// GetByUsername serves GET /api/users/{username}.
func (h *Users) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByUsername(chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
