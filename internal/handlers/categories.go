// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"houseofgames/internal/models"
	"houseofgames/internal/store"
)

// Categories groups handlers for the categories resource.
type Categories struct {
	categories *store.CategoryStore
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *store.CategoryStore) *Categories {
	return &Categories{categories: categories}
}

// List serves GET /api/categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
