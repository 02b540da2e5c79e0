package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeIdempotencyStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{values: map[string]string{}}
}

func (s *fakeIdempotencyStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (s *fakeIdempotencyStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[key]; exists {
		return false, nil
	}
	s.values[key] = fmt.Sprint(value)
	return true, nil
}

func (s *fakeIdempotencyStore) IdempotencyKey(scope, id string) string {
	return "rc:idempotency:" + scope + ":" + id
}

func (s *fakeIdempotencyStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func countingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"data":{"call":%d}}`, *calls)
	})
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := Idempotency(store, 0, nil)(countingHandler(&calls))

	first := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item_id":1,"partner_id":2}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(first, r)

	second := httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item_id":1,"partner_id":2}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(second, r)

	if calls != 1 {
		t.Fatalf("expected exactly one downstream call, got %d", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay must return the stored body: %q vs %q", first.Body.String(), second.Body.String())
	}
	if second.Header().Get("Content-Type") != "application/json" {
		t.Fatal("replay must restore the content type")
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := Idempotency(store, 0, nil)(countingHandler(&calls))

	first := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item_id":1,"partner_id":2}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(first, r)

	second := httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item_id":9,"partner_id":2}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(second, r)

	if second.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for body mismatch, got %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("mismatched reuse must not reach the handler, calls=%d", calls)
	}
}

func TestIdempotencySkipsWhenHeaderMissing(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := Idempotency(store, 0, nil)(countingHandler(&calls))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{"item_id":1,"partner_id":2}`))
		handler.ServeHTTP(w, r)
	}
	if calls != 2 {
		t.Fatalf("requests without the header must pass through, calls=%d", calls)
	}
}

func TestIdempotencyIgnoresUnprotectedRoutes(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := Idempotency(store, 0, nil)(countingHandler(&calls))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/items", strings.NewReader(`{}`))
		r.Header.Set("Idempotency-Key", "abc-123")
		handler.ServeHTTP(w, r)
	}
	if calls != 2 {
		t.Fatalf("unprotected routes must not be intercepted, calls=%d", calls)
	}
}

func TestIdempotencySkipsWithoutStore(t *testing.T) {
	calls := 0
	handler := Idempotency(nil, 0, nil)(countingHandler(&calls))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/claim", strings.NewReader(`{}`))
	r.Header.Set("Idempotency-Key", "abc-123")
	handler.ServeHTTP(w, r)
	if calls != 1 {
		t.Fatalf("missing store must degrade to passthrough, calls=%d", calls)
	}
}
