package middlewares

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultRateLimit = 300

// RateLimiter is a fixed-window per-client counter. Windows are one minute
// long and counters reset when a new window starts, so a burst straddling
// the boundary may briefly exceed the limit.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	counts  map[string]int
	window  time.Time
	nowFunc func() time.Time
}

func NewRateLimiter(limit int) *RateLimiter {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	return &RateLimiter{
		limit:   limit,
		counts:  make(map[string]int),
		nowFunc: time.Now,
	}
}

// NewRateLimiterFromEnv reads RATE_LIMIT_PER_MINUTE, falling back to the
// default when unset or malformed.
func NewRateLimiterFromEnv() *RateLimiter {
	limit, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE"))
	if err != nil {
		limit = defaultRateLimit
	}
	return NewRateLimiter(limit)
}

// Allow records one request for the client and reports whether it is still
// within the current window's budget.
func (l *RateLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.nowFunc().Truncate(time.Minute)
	if !window.Equal(l.window) {
		l.window = window
		l.counts = make(map[string]int)
	}

	l.counts[client]++
	return l.counts[client] <= l.limit
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddress(r)) {
			writeError(w, "too many requests, slow down", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
