package identity

import (
	"net/http/httptest"
	"strings"
	"testing"

	"Mosaic/internal/core/users"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Authenticated(t *testing.T) {
	p := Principal{User: &users.User{ID: 42}, ClientIP: "1.2.3.4", UserAgent: "Mozilla"}

	assert.Equal(t, "user:42", p.Fingerprint())
}

func TestFingerprint_Anonymous(t *testing.T) {
	p := Principal{ClientIP: "1.2.3.4", UserAgent: "Mozilla"}

	fp := p.Fingerprint()
	assert.Len(t, fp, 64, "anonymous fingerprint should be a sha256 hex digest")
	assert.False(t, strings.HasPrefix(fp, "user:"))

	// Same transport metadata yields the same fingerprint
	again := Principal{ClientIP: "1.2.3.4", UserAgent: "Mozilla"}
	assert.Equal(t, fp, again.Fingerprint())

	// Different metadata yields a different one
	other := Principal{ClientIP: "5.6.7.8", UserAgent: "Mozilla"}
	assert.NotEqual(t, fp, other.Fingerprint())
}

func TestFingerprint_EmptyMetadata(t *testing.T) {
	// Resolution never fails: empty transport metadata still hashes
	p := Principal{}
	assert.Len(t, p.Fingerprint(), 64)
}

func TestFingerprint_NamespacesNeverCollide(t *testing.T) {
	authed := Principal{User: &users.User{ID: 7}}
	anon := Principal{ClientIP: "user", UserAgent: "7"}

	assert.NotEqual(t, authed.Fingerprint(), anon.Fingerprint())
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for single", "9.9.9.9", "", "10.0.0.1:1234", "9.9.9.9"},
		{"x-forwarded-for chain", "9.9.9.9, 10.0.0.2", "", "10.0.0.1:1234", "9.9.9.9"},
		{"x-real-ip fallback", "", "8.8.8.8", "10.0.0.1:1234", "8.8.8.8"},
		{"remote addr strips port", "", "", "10.0.0.1:1234", "10.0.0.1"},
		{"remote addr without port", "", "", "10.0.0.1", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}

func TestResolve(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	r.Header.Set("User-Agent", "test-agent")

	anon := Resolve(r, nil)
	assert.False(t, anon.Authenticated())
	assert.Equal(t, "1.2.3.4", anon.ClientIP)
	assert.Equal(t, "test-agent", anon.UserAgent)

	authed := Resolve(r, &users.User{ID: 3})
	assert.True(t, authed.Authenticated())
	assert.Equal(t, "user:3", authed.Fingerprint())
}
