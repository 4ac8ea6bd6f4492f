package auth

import (
	"net/http"
	"strings"
)

// CookieName is the session cookie carrying the token on browser clients.
const CookieName = "jwt"

// ExtractCredential locates the raw token on an inbound request. An
// `Authorization: Bearer <token>` header takes precedence; otherwise the
// `jwt` cookie is used. First match wins, the sources are never merged.
// This is the single extraction point for the whole service; handlers read
// the resolved principal from context instead of re-parsing.
func ExtractCredential(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1], true
		}
	}

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}
