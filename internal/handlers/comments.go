// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"houseofgames/internal/apperror"
	"houseofgames/internal/store"
)

// Comments groups handlers for the comments resource, including the
// review-scoped listing and creation routes.
type Comments struct {
	comments *store.CommentStore
}

// NewComments creates a new Comments handler group.
func NewComments(comments *store.CommentStore) *Comments {
	return &Comments{comments: comments}
}

// ListByReview serves GET /api/reviews/{review_id}/comments. When the
// store reports the no-comments sentinel, the message string is served in
// place of the list.
func (h *Comments) ListByReview(w http.ResponseWriter, r *http.Request) {
	comments, msg, err := h.comments.ListByReviewID(chi.URLParam(r, "review_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if msg != "" {
		writeJSON(w, http.StatusOK, map[string]any{"comments": msg})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// Create serves POST /api/reviews/{review_id}/comments.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, apperror.BadRequest("bad request: missing body"))
		return
	}
	comment, err := h.comments.Create(chi.URLParam(r, "review_id"), body.Username, body.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}

// PatchVotes serves PATCH /api/comments/{comment_id}.
func (h *Comments) PatchVotes(w http.ResponseWriter, r *http.Request) {
	incVotes, err := decodeVotePatch(r)
	if err != nil {
		writeError(w, err)
		return
	}
	comment, err := h.comments.UpdateVotes(chi.URLParam(r, "comment_id"), incVotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"patchedComment": comment})
}

// Delete serves DELETE /api/comments/{comment_id}, returning the deleted
// row exactly once.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	comment, err := h.comments.Delete(chi.URLParam(r, "comment_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deletedComment": comment})
}
