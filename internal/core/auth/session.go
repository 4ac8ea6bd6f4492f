package auth

import (
	"net/http"
	"time"
)

const cookieMaxAge = int(DefaultTokenTTL / time.Second)

// CookieBuilder constructs the session cookies for login and logout. The
// Domain attribute is applied only outside dev/test so local cross-port
// browsing keeps working.
type CookieBuilder struct {
	domain string
}

// NewCookieBuilder creates a builder with the production cookie domain,
// e.g. ".fitlogapp.com".
func NewCookieBuilder(domain string) CookieBuilder {
	return CookieBuilder{domain: domain}
}

// LoginCookie carries the token to browser clients: HttpOnly, Secure,
// SameSite=Strict, Max-Age equal to the token TTL.
func (b CookieBuilder) LoginCookie(token string, devOrTest bool) *http.Cookie {
	c := b.base(devOrTest)
	c.Value = token
	c.MaxAge = cookieMaxAge
	return c
}

// LogoutCookie clears the session cookie immediately. Negative MaxAge
// serializes as Max-Age=0. This only removes the client-held cookie; the
// token value itself stays valid until natural expiry.
func (b CookieBuilder) LogoutCookie(devOrTest bool) *http.Cookie {
	c := b.base(devOrTest)
	c.Value = ""
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func (b CookieBuilder) base(devOrTest bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
	if !devOrTest {
		c.Domain = b.domain
	}
	return c
}
