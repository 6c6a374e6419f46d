// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"houseofgames/internal/apperror"
	"houseofgames/internal/models"
)

// UserStore handles all user-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// List returns all users.
func (s *UserStore) List() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT username, name, avatar_url FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// FindByUsername retrieves a user by their username.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT username, name, avatar_url FROM users WHERE username = $1
	`, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err == sql.ErrNoRows {
		return nil, apperror.NotFound("bad request: username does not exist")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}
