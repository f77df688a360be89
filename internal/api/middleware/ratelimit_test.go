package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Mosaic/internal/api/handlers"
)

func TestAllowWithinQuota(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("client-a"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("client-a"))
}

func TestClientsIsolated(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("client-a"))
	assert.False(t, rl.Allow("client-a"))

	// A different client has its own window
	assert.True(t, rl.Allow("client-b"))
}

func TestWindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)

	assert.True(t, rl.Allow("client-a"))
	assert.False(t, rl.Allow("client-a"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("client-a"))
}

func TestRetryAfter(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.Equal(t, time.Duration(0), rl.RetryAfter("unknown"))

	rl.Allow("client-a")
	remaining := rl.RetryAfter("client-a")
	assert.Greater(t, remaining, 50*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}

func TestMiddlewareRejectsOverQuota(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/posts/x/like", nil)
		req.RemoteAddr = "198.51.100.9:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// 429 carries the same error shape as every other endpoint
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RateLimited", body.Error)
	assert.GreaterOrEqual(t, body.RetryAfterSeconds, 1)
}

func TestMiddlewareKeysOnForwardedIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/posts/x/like", nil)
		req.RemoteAddr = "10.0.0.1:1234" // same proxy for everyone
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.1"))

	// A different forwarded client is not affected by the first one's quota
	assert.Equal(t, http.StatusOK, do("203.0.113.2"))
}
