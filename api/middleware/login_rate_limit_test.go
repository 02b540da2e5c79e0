package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/recircle-platform/recircle-backend/pkg/config"
)

type fakeCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: map[string]int64{}}
}

func (s *fakeCounterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

func loginRequest(ip string) *http.Request {
	r := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"ngo1","password":"test"}`))
	r.RemoteAddr = ip + ":41000"
	return r
}

func TestLoginRateLimitBlocksAfterLimit(t *testing.T) {
	store := newFakeCounterStore()
	cfg := config.LoginRateConfig{Window: time.Minute, IPLimit: 2}
	calls := 0
	handler := LoginRateLimit(cfg, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, loginRequest("10.0.0.1"))
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, loginRequest("10.0.0.1"))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third attempt, got %d", w.Code)
	}
	if calls != 2 {
		t.Fatalf("blocked attempts must not reach the handler, calls=%d", calls)
	}
}

func TestLoginRateLimitTracksUsernameAcrossIPs(t *testing.T) {
	store := newFakeCounterStore()
	cfg := config.LoginRateConfig{Window: time.Minute, IPLimit: 2}
	handler := LoginRateLimit(cfg, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ips := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	var last *httptest.ResponseRecorder
	for _, ip := range ips {
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, loginRequest(ip))
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected username counter to block the third attempt, got %d", last.Code)
	}
}

func TestLoginRateLimitDisabledWithoutStore(t *testing.T) {
	cfg := config.LoginRateConfig{Window: time.Minute, IPLimit: 1}
	calls := 0
	handler := LoginRateLimit(cfg, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, loginRequest("10.0.0.1"))
	}
	if calls != 3 {
		t.Fatalf("missing store must disable limiting, calls=%d", calls)
	}
}
