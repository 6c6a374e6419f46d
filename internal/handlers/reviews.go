// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"houseofgames/internal/apperror"
	"houseofgames/internal/models"
	"houseofgames/internal/store"
)

// votePatch is the recognized shape of a vote-increment body. Unrecognized
// extra fields are ignored by the decoder; a missing or non-numeric
// inc_votes both leave IncVotes nil or fail decoding, and both reject with
// the same domain error.
type votePatch struct {
	IncVotes *int `json:"inc_votes"`
}

// decodeVotePatch reads a vote-increment body, mapping every decode
// failure to the invalid-request-body domain error.
func decodeVotePatch(r *http.Request) (*int, error) {
	var patch votePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return nil, apperror.BadRequest("bad request: invalid request body")
	}
	return patch.IncVotes, nil
}

// Reviews groups handlers for the reviews resource.
type Reviews struct {
	reviews *store.ReviewStore
}

// NewReviews creates a new Reviews handler group.
func NewReviews(reviews *store.ReviewStore) *Reviews {
	return &Reviews{reviews: reviews}
}

// List serves GET /api/reviews with optional sort_by, order and category
// queries. When the store reports the no-reviews sentinel, the message
// string is served in place of the list.
func (h *Reviews) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reviews, msg, err := h.reviews.List(q.Get("sort_by"), q.Get("order"), q.Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusOK, map[string]any{"reviews": msg})
		return
	}
	if reviews == nil {
		reviews = []models.ReviewSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

// GetByID serves GET /api/reviews/{review_id}.
func (h *Reviews) GetByID(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.FindByID(chi.URLParam(r, "review_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"review": review})
}

// PatchVotes serves PATCH /api/reviews/{review_id}.
func (h *Reviews) PatchVotes(w http.ResponseWriter, r *http.Request) {
	incVotes, err := decodeVotePatch(r)
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.reviews.UpdateVotes(chi.URLParam(r, "review_id"), incVotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"patchedReview": review})
}
