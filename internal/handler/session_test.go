package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionWriterSecureFollowsDeploymentMode(t *testing.T) {
	tests := []struct {
		name   string
		secure bool
	}{
		{"development", false},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw := NewSessionWriter(tt.secure, 2*time.Hour)
			rr := httptest.NewRecorder()
			sw.Set(rr, "some-token")

			cookies := rr.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("got %d cookies, want 1", len(cookies))
			}

			c := cookies[0]
			if c.Name != SessionCookieName {
				t.Errorf("cookie name = %q, want %q", c.Name, SessionCookieName)
			}
			if c.Secure != tt.secure {
				t.Errorf("cookie Secure = %v, want %v", c.Secure, tt.secure)
			}
			if !c.HttpOnly {
				t.Error("cookie is not HttpOnly")
			}
			if c.SameSite != http.SameSiteStrictMode {
				t.Errorf("cookie SameSite = %v, want Strict", c.SameSite)
			}
			if c.MaxAge != int((2 * time.Hour).Seconds()) {
				t.Errorf("cookie MaxAge = %d, want %d", c.MaxAge, int((2*time.Hour).Seconds()))
			}
		})
	}
}
