package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Run("assigns a parseable id and exposes it in the context", func(t *testing.T) {
		var ctxID string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = GetRequestID(r.Context())
		})

		handler := RequestID(inner)

		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		headerID := rr.Header().Get("X-Request-ID")
		if headerID == "" {
			t.Fatal("X-Request-ID header should be set")
		}
		if _, err := uuid.Parse(headerID); err != nil {
			t.Errorf("X-Request-ID %q is not a valid UUID: %v", headerID, err)
		}
		if ctxID != headerID {
			t.Errorf("context id %q should match header id %q", ctxID, headerID)
		}
	})

	t.Run("ids differ between requests", func(t *testing.T) {
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		ids := map[string]bool{}
		for i := 0; i < 3; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			ids[rr.Header().Get("X-Request-ID")] = true
		}
		if len(ids) != 3 {
			t.Errorf("expected 3 distinct request ids, got %d", len(ids))
		}
	})
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("expected empty id without middleware, got %q", id)
	}
}
