package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Mosaic/internal/core/users"
	"Mosaic/internal/db/memory"
)

const testSecret = "test-secret"

// mintCookie produces a session cookie the way the external auth service does
func mintCookie(t *testing.T, userID int64) *http.Cookie {
	t.Helper()

	store := sessions.NewCookieStore([]byte(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := store.Get(req, sessionName)
	require.NoError(t, err)
	session.Values[sessionUserKey] = userID
	require.NoError(t, session.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestResolveAuthenticated(t *testing.T) {
	store := memory.New()
	userService := users.NewUserService(store.Users(), nil)

	u, err := userService.UpsertUser(context.Background(), users.UpsertUserRequest{
		ExternalID:  "ext-1",
		DisplayName: "Member",
	})
	require.NoError(t, err)

	auth := NewSessionAuth(testSecret, userService)

	var seen *users.User
	handler := auth.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(mintCookie(t, u.ID))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, u.ID, seen.ID)
	assert.Equal(t, "Member", seen.DisplayName)
}

func TestResolveNoCookieIsAnonymous(t *testing.T) {
	store := memory.New()
	auth := NewSessionAuth(testSecret, users.NewUserService(store.Users(), nil))

	var seen *users.User
	handler := auth.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// Anonymous callers proceed, they are not rejected
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestResolveStaleSessionDegradesToAnonymous(t *testing.T) {
	store := memory.New()
	auth := NewSessionAuth(testSecret, users.NewUserService(store.Users(), nil))

	var seen *users.User
	handler := auth.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	// Cookie points at a user that no longer exists
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(mintCookie(t, 9999))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestWithUser(t *testing.T) {
	u := &users.User{ID: 7, DisplayName: "Seeded"}
	req := WithUser(httptest.NewRequest(http.MethodGet, "/", nil), u)

	assert.Equal(t, u, CurrentUser(req))
}
