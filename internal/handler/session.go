package handler

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionWriter places session tokens into responses as a protected cookie.
// The Secure flag is decided once at construction from the deployment mode —
// there is deliberately no per-call override.
type SessionWriter struct {
	secure bool
	maxAge int
}

// NewSessionWriter creates a SessionWriter. secure should be true for any
// production-like deployment; the cookie lifetime matches the token expiry.
func NewSessionWriter(secure bool, lifetime time.Duration) *SessionWriter {
	return &SessionWriter{
		secure: secure,
		maxAge: int(lifetime.Seconds()),
	}
}

// Set attaches the token as an HttpOnly, SameSite=Strict cookie.
func (s *SessionWriter) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
