package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	mu     sync.Mutex
	values map[string]string
	counts map[string]int64
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		values: map[string]string{},
		counts: map[string]int64{},
	}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value.(string)
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	if val, ok := m.values[key]; ok {
		cmd.SetVal(val)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd := redis.NewBoolCmd(ctx)
	if _, exists := m.values[key]; exists {
		cmd.SetVal(false)
		return cmd
	}
	m.values[key] = value.(string)
	cmd.SetVal(true)
	return cmd
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(m.counts[key])
	return cmd
}

func (m *mockCmdable) Expire(ctx context.Context, _ string, _ time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	allowed, count, err := client.FixedWindowAllow(ctx, "login:1.2.3.4", 2, time.Minute)
	if err != nil || !allowed || count != 1 {
		t.Fatalf("first call: allowed=%v count=%d err=%v", allowed, count, err)
	}
	allowed, _, _ = client.FixedWindowAllow(ctx, "login:1.2.3.4", 2, time.Minute)
	if !allowed {
		t.Fatal("second call should still be allowed")
	}
	allowed, count, _ = client.FixedWindowAllow(ctx, "login:1.2.3.4", 2, time.Minute)
	if allowed || count != 3 {
		t.Fatalf("third call should be blocked, got allowed=%v count=%d", allowed, count)
	}
}

func TestSetNXIsFirstWriterWins(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	key := client.IdempotencyKey("claim", "abc")
	ok, err := client.SetNX(ctx, key, "one", time.Hour)
	if err != nil || !ok {
		t.Fatalf("first SetNX: ok=%v err=%v", ok, err)
	}
	ok, _ = client.SetNX(ctx, key, "two", time.Hour)
	if ok {
		t.Fatal("second SetNX should lose")
	}
	val, err := client.Get(ctx, key)
	if err != nil || val != "one" {
		t.Fatalf("expected first value to stick, got %q err=%v", val, err)
	}
}

func TestKeyNamespacing(t *testing.T) {
	client := &Client{}
	if got := client.IdempotencyKey("claim", "k1"); got != "rc:idempotency:claim:k1" {
		t.Fatalf("unexpected idempotency key %q", got)
	}
	if got := client.RateLimitKey("login:ip"); got != "rc:rate_limit:login:ip" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
}
