package middleware

import (
	"math"
	"net/http"
	"sync"
	"time"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/core/identity"
)

// RateLimiter implements a fixed-window in-memory rate limiter keyed by
// client IP. Counters are process-local and reset on restart; that's
// acceptable for abuse mitigation, which is all this is.
type RateLimiter struct {
	clients  map[string]*clientLimit
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientLimit struct {
	resetTime time.Time
	count     int
}

// NewRateLimiter creates a new rate limiter.
// requests: maximum number of requests allowed per window
// window: window duration (e.g. 1 minute)
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimit),
		requests: requests,
		window:   window,
	}

	// Drop expired entries every window duration
	go rl.cleanup()

	return rl
}

// Middleware rejects requests over quota with 429 before they reach
// validation or the store.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := identity.ClientIP(r)

		if !rl.Allow(clientID) {
			retryAfter := rl.RetryAfter(clientID)
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}

			handlers.WriteJSON(w, http.StatusTooManyRequests, handlers.ErrorResponse{
				Error:             "RateLimited",
				Message:           "Too many requests, try again later",
				RetryAfterSeconds: seconds,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Allow checks whether the client has quota left in the current window and
// consumes one unit if so.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	client, exists := rl.clients[clientID]
	if !exists || now.After(client.resetTime) {
		rl.clients[clientID] = &clientLimit{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if client.count < rl.requests {
		client.count++
		return true
	}

	return false
}

// RetryAfter returns how long until the client's window resets.
func (rl *RateLimiter) RetryAfter(clientID string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[clientID]
	if !exists {
		return 0
	}

	remaining := time.Until(client.resetTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup removes expired client entries periodically
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for clientID, client := range rl.clients {
			if now.After(client.resetTime) {
				delete(rl.clients, clientID)
			}
		}
		rl.mu.Unlock()
	}
}
