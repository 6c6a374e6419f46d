package store

import (
	"net/http"
	"testing"
)

func TestCheckCategory(t *testing.T) {
	db := testDB(t)
	resetAndSeed(t, db)

	if err := CheckCategory(db, "euro game"); err != nil {
		t.Errorf("existing category: got %v, want nil", err)
	}

	err := CheckCategory(db, "hello")
	expectDomainError(t, err, http.StatusNotFound, "bad request: category does not exist")
}

func TestCheckReview(t *testing.T) {
	db := testDB(t)
	resetAndSeed(t, db)

	if err := CheckReview(db, "1"); err != nil {
		t.Errorf("existing review: got %v, want nil", err)
	}

	err := CheckReview(db, "1000")
	expectDomainError(t, err, http.StatusNotFound, "bad request: valid id type but out of range")
}
