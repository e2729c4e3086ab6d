package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimit is a snapshot of the per-key request quota reported by the API
// via X-RateLimit-* headers. Zero values mean the API has not reported yet.
type RateLimit struct {
	// Limit is the number of requests allowed per hour.
	Limit int
	// Remaining is the number of requests left before the API starts
	// rejecting with 429.
	Remaining int
	// RetryAfter is how long until the quota resets. Only non-zero while
	// the quota is exhausted.
	RetryAfter time.Duration
}

type rateLimitTracker struct {
	mu      sync.Mutex
	current RateLimit
}

func (t *rateLimitTracker) update(h http.Header) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := headerInt(h, "X-RateLimit-Limit"); ok {
		t.current.Limit = v
	}
	if v, ok := headerInt(h, "X-RateLimit-Remaining"); ok {
		t.current.Remaining = v
	}
	if v, ok := headerInt(h, "X-Ratelimit-RetryAfter"); ok {
		t.current.RetryAfter = time.Duration(v) * time.Second
	}
}

func (t *rateLimitTracker) snapshot() RateLimit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func headerInt(h http.Header, key string) (int, bool) {
	raw := h.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
