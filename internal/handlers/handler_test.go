// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"houseofgames/internal/database"
	"houseofgames/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL, runs migrations, and
// loads the deterministic seed dataset (reviews 1-5, comments 1-4).
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "houseofgames")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "houseofgames")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec(`TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`); err != nil {
		db.Close()
		t.Fatalf("truncate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		db.Close()
		t.Fatalf("seed: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestRouter wires the handler groups onto the same route table the
// router package uses, without importing it (which would cycle).
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testDB(t)

	categories := NewCategories(store.NewCategoryStore(db))
	users := NewUsers(store.NewUserStore(db))
	reviews := NewReviews(store.NewReviewStore(db))
	comments := NewComments(store.NewCommentStore(db))

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"msg": "route not found"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/", Endpoints)
		r.Get("/categories", categories.List)
		r.Get("/users", users.List)
		r.Get("/users/{username}", users.GetByUsername)
		r.Get("/reviews", reviews.List)
		r.Get("/reviews/{review_id}", reviews.GetByID)
		r.Patch("/reviews/{review_id}", reviews.PatchVotes)
		r.Get("/reviews/{review_id}/comments", comments.ListByReview)
		r.Post("/reviews/{review_id}/comments", comments.Create)
		r.Delete("/comments/{comment_id}", comments.Delete)
		r.Patch("/comments/{comment_id}", comments.PatchVotes)
	})
	return r
}

// doRequest performs a request against the test router and returns the
// recorded response.
func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals the recorded JSON response body into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// expectStatus asserts the response status, dumping the body on mismatch.
func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d (body %s)", rr.Code, want, rr.Body.String())
	}
}

// expectMsg asserts the response carries the given status and msg envelope.
func expectMsg(t *testing.T, rr *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	expectStatus(t, rr, status)
	var body struct {
		Msg string `json:"msg"`
	}
	decodeBody(t, rr, &body)
	if body.Msg != msg {
		t.Errorf("msg: got %q, want %q", body.Msg, msg)
	}
}
