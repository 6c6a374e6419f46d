// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category represents a board game category. Categories are seeded
// reference data and are immutable at runtime.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
