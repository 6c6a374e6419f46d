// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the data accessors for the board game review
// API. Each store struct wraps a *sql.DB and exposes typed query methods.
// Validation failures and not-found cases reject with *apperror.Error;
// transport and database failures are wrapped with context and left for
// the handlers' error pipeline to classify.
package store

import (
	"database/sql"
	"fmt"

	"houseofgames/internal/models"
)

// CategoryStore manages board game categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT slug, description FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
