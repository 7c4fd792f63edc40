package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/catalog/pkg/logger"
)

func TestNewSessionStore_Defaults(t *testing.T) {
	s := NewSessionStore(nil, []byte("a"), nil, SessionOptions{Secure: true})
	if s.prefix != defaultSessionPrefix {
		t.Fatalf("expected prefix %q, got %q", defaultSessionPrefix, s.prefix)
	}
	if s.options.MaxAge != int(defaultSessionMaxAge.Seconds()) {
		t.Fatalf("unexpected MaxAge %d", s.options.MaxAge)
	}
	if !s.options.Secure || !s.options.HttpOnly {
		t.Fatalf("expected secure http-only cookie, got %+v", s.options)
	}
}

// Integration test, skipped unless REDIS_URL is set.
func TestRedisStore_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewSessionStore(rdb,
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		SessionOptions{KeyPrefix: "catalog-test:session:", MaxAge: time.Minute},
	)

	r := requestWithSession(t, store, map[string]string{sessionUserIDKey: "redis-owner"})

	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = IdentityFromCtx(r.Context())
	})
	w := httptest.NewRecorder()
	RequireSession(store, logger.Discard())(next).ServeHTTP(w, r)

	if captured.ID != "redis-owner" {
		t.Fatalf("expected identity from redis session, got %+v", captured)
	}

	keys, err := rdb.Keys(context.Background(), "catalog-test:session:*").Result()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) == 0 {
		t.Fatal("expected session key in redis")
	}
	_ = rdb.Del(context.Background(), keys...).Err()
}
