// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"houseofgames/internal/apperror"
)

// Existence checks used to distinguish "filter matched nothing" from
// "referenced entity does not exist". A listing that comes back empty
// consults the relevant check before deciding between a sentinel message
// and a not-found error.

// CheckCategory rejects with a 404 domain error if no category has the
// given slug.
func CheckCategory(db *sql.DB, slug string) error {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)
	`, slug).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return apperror.NotFound("bad request: category does not exist")
	}
	return nil
}

// CheckReview rejects with a 404 domain error if no review has the given
// id. The id is passed through as text so a malformed value surfaces as a
// database type error classified downstream.
func CheckReview(db *sql.DB, reviewID string) error {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM reviews WHERE review_id = $1)
	`, reviewID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check review: %w", err)
	}
	if !exists {
		return apperror.NotFound("bad request: valid id type but out of range")
	}
	return nil
}
