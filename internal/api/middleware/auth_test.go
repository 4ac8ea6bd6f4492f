package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testResolver() (*auth.TokenCodec, *auth.Resolver) {
	codec := auth.NewTokenCodec(testSecret, time.Hour)
	return codec, auth.NewResolver(codec)
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	e := echo.New()
	codec, resolver := testResolver()

	token, err := codec.Encode("user_1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(resolver)(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.UserID != "user_1" || p.Role != domain.RoleUser {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_ValidCookieToken(t *testing.T) {
	e := echo.New()
	codec, resolver := testResolver()

	token, err := codec.Encode("user_1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(resolver)(func(c echo.Context) error {
		if _, ok := PrincipalFrom(c); !ok {
			t.Fatalf("principal not set from cookie")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_InvalidTokenRejected(t *testing.T) {
	e := echo.New()
	_, resolver := testResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_ExpiredTokenRejected(t *testing.T) {
	e := echo.New()
	_, resolver := testResolver()

	// Issue a token that is already outside its window.
	expiredCodec := auth.NewTokenCodec(testSecret, time.Nanosecond)
	token, err := expiredCodec.Encode("user_1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_NoCredentialPassesThrough(t *testing.T) {
	e := echo.New()
	_, resolver := testResolver()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(resolver)(func(c echo.Context) error {
		called = true
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("unexpected principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("credential-less request must pass through to the route")
	}
}
