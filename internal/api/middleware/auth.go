package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"Mosaic/internal/core/users"
)

// Context keys for storing request-scoped values
type contextKey string

const userContextKey contextKey = "current_user"

const (
	// sessionName must match the cookie the external auth service issues
	sessionName    = "mosaic_session"
	sessionUserKey = "user_id"
)

// SessionAuth resolves the caller's identity from the session cookie issued
// by the external auth service. It never rejects a request: an absent,
// expired or unreadable session simply yields an anonymous caller.
type SessionAuth struct {
	store *sessions.CookieStore
	users users.UserService
}

// NewSessionAuth creates the session-resolution middleware. The secret must
// be the one the auth service signs cookies with.
func NewSessionAuth(secret string, userService users.UserService) *SessionAuth {
	return &SessionAuth{
		store: sessions.NewCookieStore([]byte(secret)),
		users: userService,
	}
}

// Resolve hydrates the session's user (if any) into the request context.
func (m *SessionAuth) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err == nil && !session.IsNew {
			if id, ok := session.Values[sessionUserKey].(int64); ok {
				// A stale session pointing at a deleted user degrades to
				// anonymous rather than failing the request
				if user, err := m.users.GetUserByID(r.Context(), id); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user from the request context, or
// nil for anonymous callers.
func CurrentUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(userContextKey).(*users.User)
	return user
}

// WithUser returns a request carrying the given user in its context.
// Test helper for exercising handlers without a real session cookie.
func WithUser(r *http.Request, user *users.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, user))
}
