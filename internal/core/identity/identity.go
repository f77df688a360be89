package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"

	"Mosaic/internal/core/users"
)

// Principal is the resolved caller of a request: either an authenticated
// user or an anonymous visitor identified only by transport metadata.
type Principal struct {
	// User is nil for anonymous callers
	User      *users.User
	ClientIP  string
	UserAgent string
}

// Authenticated reports whether the caller is logged in.
func (p Principal) Authenticated() bool {
	return p.User != nil
}

// Fingerprint derives the opaque identity string used as the uniqueness key
// for like records.
//
// Authenticated callers get "user:<id>", stable across devices so an
// account's likes merge regardless of client. Anonymous callers get a sha256
// of ip:user-agent, stable per browser/network pairing without cookies or
// stored PII. The two namespaces can't collide: hex digests never contain
// ':'. This is deliberately not spoof-proof; the only thing it protects is a
// vanity count.
func (p Principal) Fingerprint() string {
	if p.User != nil {
		return "user:" + strconv.FormatInt(p.User.ID, 10)
	}

	sum := sha256.Sum256([]byte(p.ClientIP + ":" + p.UserAgent))
	return hex.EncodeToString(sum[:])
}

// Resolve builds a Principal from a request and the (possibly nil) user
// hydrated by the session middleware. It never fails: missing transport
// metadata hashes as empty strings rather than rejecting the request.
func Resolve(r *http.Request, user *users.User) Principal {
	return Principal{
		User:      user,
		ClientIP:  ClientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
	}
}

// ClientIP extracts the client IP from the request.
// Checks proxy headers first since the service runs behind a reverse proxy.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For may carry a chain; the first entry is the client
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// RemoteAddr is host:port; strip the port when present
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
