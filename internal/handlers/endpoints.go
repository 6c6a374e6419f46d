// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// EndpointDoc describes one API operation for the GET /api catalogue.
type EndpointDoc struct {
	Description     string   `json:"description"`
	Queries         []string `json:"queries,omitempty"`
	ExampleRequest  any      `json:"exampleRequest,omitempty"`
	ExampleResponse any      `json:"exampleResponse,omitempty"`
}

// endpoints is the self-describing catalogue served at GET /api.
var endpoints = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/categories": {
		Description: "serves an array of all categories",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"categories": []map[string]string{{
				"slug":        "social deduction",
				"description": "Players attempt to uncover each other's hidden role",
			}},
		},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
		Queries:     []string{},
		ExampleResponse: map[string]any{
			"users": []map[string]string{{
				"username":   "dav3rid",
				"name":       "dave",
				"avatar_url": "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			}},
		},
	},
	"GET /api/users/:username": {
		Description: "serves a user object for given username",
		Queries:     []string{},
	},
	"GET /api/reviews": {
		Description: "serves an array of all reviews",
		Queries:     []string{"category", "sort_by", "order"},
	},
	"GET /api/reviews/:review_id": {
		Description: "serves a review object for given id",
		Queries:     []string{},
	},
	"PATCH /api/reviews/:review_id": {
		Description:    "updates a review's votes and serves the updated review object",
		Queries:        []string{},
		ExampleRequest: map[string]int{"inc_votes": 1},
	},
	"GET /api/reviews/:review_id/comments": {
		Description: "serves an array of comments for given review id",
		Queries:     []string{},
	},
	"POST /api/reviews/:review_id/comments": {
		Description:    "adds a comment to a review and serves the created comment",
		Queries:        []string{},
		ExampleRequest: map[string]string{"username": "philippaclaire9", "body": "test body"},
	},
	"PATCH /api/comments/:comment_id": {
		Description:    "updates a comment's votes and serves the updated comment object",
		Queries:        []string{},
		ExampleRequest: map[string]int{"inc_votes": 1},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment and serves the deleted comment object",
		Queries:     []string{},
	},
}

// Endpoints serves GET /api.
func Endpoints(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"endpoints": endpoints})
}
