// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"houseofgames/internal/apperror"
	"houseofgames/internal/models"
)

// Sentinel messages returned in place of a list when the filter matched an
// existing parent that simply has no rows. Handlers serve the string itself
// so clients can tell "intentionally empty" apart from an error.
const (
	NoReviewsMsg  = "currently no reviews for this category"
	NoCommentsMsg = "currently no comments for this review"
)

// reviewSortColumns is the closed whitelist of sortable columns. The sort
// column is interpolated into the query text, never bound as a parameter,
// so anything outside this list must be rejected before composing SQL.
var reviewSortColumns = []string{
	"title", "designer", "owner", "review_body",
	"category", "created_at", "votes", "review_img_url",
}

// ReviewStore manages board game reviews in the database.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore returns a new ReviewStore.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// List returns review summaries with computed comment counts, sorted by
// sortBy/order and optionally filtered by category. sortBy defaults to
// created_at, order to DESC. When the filter matches an existing category
// with no reviews, List returns msg = NoReviewsMsg and no rows.
func (s *ReviewStore) List(sortBy, order, category string) (reviews []models.ReviewSummary, msg string, err error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "DESC"
	}
	if !slices.Contains(reviewSortColumns, sortBy) {
		return nil, "", apperror.BadRequest("bad request: column does not exist")
	}
	order = strings.ToUpper(order)
	if order != "ASC" && order != "DESC" {
		return nil, "", apperror.BadRequest("bad request: invalid order query")
	}

	query := `
		SELECT reviews.owner, reviews.title, reviews.review_id, reviews.category,
		       reviews.review_img_url, reviews.created_at, reviews.votes,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id`
	var args []any
	if category != "" {
		query += ` WHERE reviews.category = $1`
		args = append(args, category)
	}
	// sortBy and order are validated against closed lists above.
	query += ` GROUP BY reviews.review_id ORDER BY ` + sortBy + ` ` + order

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.ReviewSummary
		err := rows.Scan(
			&r.Owner, &r.Title, &r.ReviewID, &r.Category,
			&r.ReviewImgURL, &r.CreatedAt, &r.Votes, &r.CommentCount,
		)
		if err != nil {
			return nil, "", fmt.Errorf("scan review summary: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if len(reviews) == 0 && category != "" {
		if err := CheckCategory(s.db, category); err != nil {
			return nil, "", err
		}
		return nil, NoReviewsMsg, nil
	}
	return reviews, "", nil
}

// FindByID retrieves a single review with its computed comment count. The
// id stays a string end-to-end: a well-formed id with no row is a 404
// domain error, while a malformed one surfaces as a database type error
// classified by the handlers' error pipeline.
func (s *ReviewStore) FindByID(reviewID string) (*models.ReviewDetail, error) {
	r := &models.ReviewDetail{}
	err := s.db.QueryRow(`
		SELECT reviews.review_id, reviews.title, reviews.review_body, reviews.designer,
		       reviews.review_img_url, reviews.votes, reviews.category, reviews.owner,
		       reviews.created_at,
		       COUNT(comments.comment_id)::INT AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id
	`, reviewID).Scan(
		&r.ReviewID, &r.Title, &r.ReviewBody, &r.Designer,
		&r.ReviewImgURL, &r.Votes, &r.Category, &r.Owner,
		&r.CreatedAt, &r.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("bad request: valid id type but out of range")
	}
	if err != nil {
		return nil, fmt.Errorf("find review by id: %w", err)
	}
	return r, nil
}

// UpdateVotes applies an unchecked vote delta atomically and returns the
// updated review. incVotes is nil when the request body was missing the
// field or carried a non-numeric value; both reject the same way.
func (s *ReviewStore) UpdateVotes(reviewID string, incVotes *int) (*models.Review, error) {
	if incVotes == nil {
		return nil, apperror.BadRequest("bad request: invalid request body")
	}

	r := &models.Review{}
	err := s.db.QueryRow(`
		UPDATE reviews
		SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id, title, review_body, designer, review_img_url,
		          votes, category, owner, created_at
	`, *incVotes, reviewID).Scan(
		&r.ReviewID, &r.Title, &r.ReviewBody, &r.Designer, &r.ReviewImgURL,
		&r.Votes, &r.Category, &r.Owner, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("bad request: valid id type but out of range")
	}
	if err != nil {
		return nil, fmt.Errorf("update review votes: %w", err)
	}
	return r, nil
}
