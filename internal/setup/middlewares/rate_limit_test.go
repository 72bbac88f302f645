package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(3)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// A different client has its own counter.
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter(1)

	current := time.Date(2026, 3, 2, 10, 0, 30, 0, time.UTC)
	limiter.nowFunc = func() time.Time { return current }

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	current = current.Add(time.Minute)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimiterMiddlewareResponds429(t *testing.T) {
	limiter := NewRateLimiter(1)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"success":false,"error":"too many requests, slow down"}`, second.Body.String())
}

func TestClientAddress(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.9:4321"
	assert.Equal(t, "10.0.0.9", clientAddress(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientAddress(r))
}
