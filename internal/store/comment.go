// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"houseofgames/internal/apperror"
	"houseofgames/internal/models"
)

// Postgres foreign-key violation, used to classify constraint failures on
// comment insertion.
const pgFKViolation = "23503"

// CommentStore manages review comments in the database.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

// ListByReviewID returns the comments for a review, joined to users for
// the author's username. When the review exists but has no comments,
// msg = NoCommentsMsg is returned in place of a list.
func (s *CommentStore) ListByReviewID(reviewID string) (comments []models.ReviewComment, msg string, err error) {
	rows, err := s.db.Query(`
		SELECT comments.comment_id, comments.votes, comments.created_at,
		       comments.body, users.username AS author
		FROM comments
		LEFT JOIN users ON users.username = comments.author
		WHERE comments.review_id = $1
		ORDER BY comments.created_at DESC
	`, reviewID)
	if err != nil {
		return nil, "", fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.ReviewComment
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Body, &c.Author); err != nil {
			return nil, "", fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if len(comments) == 0 {
		if err := CheckReview(s.db, reviewID); err != nil {
			return nil, "", err
		}
		return nil, NoCommentsMsg, nil
	}
	return comments, "", nil
}

// Create inserts a comment on a review with default votes = 0 and a
// server-assigned timestamp. Author and review existence are enforced by
// the insert's foreign keys rather than separate lookups, so there is no
// window between checking and inserting.
func (s *CommentStore) Create(reviewID, username, body string) (*models.Comment, error) {
	if username == "" || body == "" {
		return nil, apperror.BadRequest("bad request: missing body")
	}

	c := &models.Comment{}
	err := s.db.QueryRow(`
		INSERT INTO comments (author, review_id, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, author, review_id, votes, created_at, body
	`, username, reviewID, body).Scan(
		&c.CommentID, &c.Author, &c.ReviewID, &c.Votes, &c.CreatedAt, &c.Body,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			switch pgErr.ConstraintName {
			case "comments_author_fkey":
				return nil, apperror.BadRequest("bad request: username does not exist")
			case "comments_review_id_fkey":
				return nil, apperror.NotFound("bad request: valid id type but out of range")
			}
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// UpdateVotes applies an unchecked vote delta atomically and returns the
// updated comment. Same contract as ReviewStore.UpdateVotes.
func (s *CommentStore) UpdateVotes(commentID string, incVotes *int) (*models.Comment, error) {
	if incVotes == nil {
		return nil, apperror.BadRequest("bad request: invalid request body")
	}

	c := &models.Comment{}
	err := s.db.QueryRow(`
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, author, review_id, votes, created_at, body
	`, *incVotes, commentID).Scan(
		&c.CommentID, &c.Author, &c.ReviewID, &c.Votes, &c.CreatedAt, &c.Body,
	)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("bad request: valid id type but out of range")
	}
	if err != nil {
		return nil, fmt.Errorf("update comment votes: %w", err)
	}
	return c, nil
}

// Delete removes a comment and returns the deleted row.
func (s *CommentStore) Delete(commentID string) (*models.Comment, error) {
	c := &models.Comment{}
	err := s.db.QueryRow(`
		DELETE FROM comments
		WHERE comment_id = $1
		RETURNING comment_id, author, review_id, votes, created_at, body
	`, commentID).Scan(
		&c.CommentID, &c.Author, &c.ReviewID, &c.Votes, &c.CreatedAt, &c.Body,
	)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("bad request: valid id type but out of range")
	}
	if err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return c, nil
}
