package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed creates data only when no users exist, so calling it twice must
	// not duplicate rows or error.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	counts := map[string]int{
		"categories": 4,
		"users":      4,
	}
	for table, min := range counts {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n < min {
			t.Errorf("%s: got %d rows, want at least %d", table, n, min)
		}
	}

	// Foreign keys held: every review category and owner must resolve.
	var orphans int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM reviews
		LEFT JOIN categories ON categories.slug = reviews.category
		WHERE categories.slug IS NULL
	`).Scan(&orphans)
	if err != nil {
		t.Fatalf("count orphan reviews: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected no reviews with dangling categories, got %d", orphans)
	}
}
