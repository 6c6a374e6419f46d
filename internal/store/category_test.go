// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "testing"

func TestCategoryList(t *testing.T) {
	db := testDB(t)
	resetAndSeed(t, db)
	s := NewCategoryStore(db)

	categories, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("categories: got %d, want 4", len(categories))
	}

	seen := map[string]bool{}
	for _, c := range categories {
		if c.Slug == "" || c.Description == "" {
			t.Errorf("category %+v has empty fields", c)
		}
		seen[c.Slug] = true
	}
	for _, slug := range []string{"euro game", "social deduction", "dexterity", "children's games"} {
		if !seen[slug] {
			t.Errorf("expected category %q in listing", slug)
		}
	}
}
