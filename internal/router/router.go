// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// board game review API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"houseofgames/internal/handlers"
	"houseofgames/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(categories *handlers.Categories, users *handlers.Users, reviews *handlers.Reviews, comments *handlers.Comments) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Anything that doesn't match a route below is a uniform 404.
	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	// Greeting and health check.
	r.Get("/", greetingHandler)
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Endpoints)

		r.Get("/categories", categories.List)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Get("/{username}", users.GetByUsername)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviews.List)
			r.Get("/{review_id}", reviews.GetByID)
			r.Patch("/{review_id}", reviews.PatchVotes)
			r.Get("/{review_id}/comments", comments.ListByReview)
			r.Post("/{review_id}/comments", comments.Create)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Delete("/{comment_id}", comments.Delete)
			r.Patch("/{comment_id}", comments.PatchVotes)
		})
	})

	return r
}

// greetingHandler responds to GET / with a short identification message.
func greetingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"msg":"House of games API"}`)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"status":"ok"}`)
}

// notFoundHandler serves the uniform response for unmatched routes.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"msg":"route not found"}`))
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
