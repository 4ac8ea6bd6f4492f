package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	listFn      func(ctx context.Context, p domain.Principal) ([]domain.User, error)
	getFn       func(ctx context.Context, p domain.Principal, id string) (*domain.User, error)
	deleteFn    func(ctx context.Context, p domain.Principal, id string) error
	deleteOwnFn func(ctx context.Context, p domain.Principal) error
}

func (s *stubUserService) List(ctx context.Context, p domain.Principal) ([]domain.User, error) {
	return s.listFn(ctx, p)
}

func (s *stubUserService) Get(ctx context.Context, p domain.Principal, id string) (*domain.User, error) {
	return s.getFn(ctx, p, id)
}

func (s *stubUserService) Delete(ctx context.Context, p domain.Principal, id string) error {
	return s.deleteFn(ctx, p, id)
}

func (s *stubUserService) DeleteOwn(ctx context.Context, p domain.Principal) error {
	return s.deleteOwnFn(ctx, p)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testCookies() auth.CookieBuilder {
	return auth.NewCookieBuilder(".fitlogapp.com")
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password string) (*domain.User, error) {
			if email != "alice@example.com" || password != "s3cretpass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "user_1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub, &stubUserService{}, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodPost, "/users", `{"email":"alice@example.com","password":"s3cretpass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" || resp["role"] != "USER" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password leaked into response")
	}
}

func TestUserHandler_Register_Validation(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{}, testCookies(), true)

	cases := []string{
		`{"email":"not-an-email","password":"s3cretpass"}`,
		`{"email":"alice@example.com","password":"short"}`,
		`{"password":"s3cretpass"}`,
	}
	for _, body := range cases {
		c, rec := jsonRequest(e, http.MethodPost, "/users", body)
		if err := h.Register(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewUserHandler(stub, &stubUserService{}, testCookies(), true)

	c, _ := jsonRequest(e, http.MethodPost, "/users", `{"email":"bob@example.com","password":"s3cretpass"}`)
	// The sentinel propagates to the central error handler for the 409.
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserHandler_Login_SetsCookie(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "user_1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub, &stubUserService{}, testCookies(), false)

	c, rec := jsonRequest(e, http.MethodPost, "/users/login", `{"email":"alice@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	res := rec.Result()
	var session *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == auth.CookieName {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("session cookie not set")
	}
	if session.Value != "tok123" {
		t.Fatalf("unexpected cookie value: %q", session.Value)
	}
	if !session.HttpOnly || !session.Secure || session.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", session)
	}
	if session.Domain != "fitlogapp.com" && session.Domain != ".fitlogapp.com" {
		t.Fatalf("expected production domain, got %q", session.Domain)
	}

	// The token never appears in the response body.
	if strings.Contains(rec.Body.String(), "tok123") {
		t.Fatalf("token leaked into body: %s", rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewUserHandler(stub, &stubUserService{}, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodPost, "/users/login", `{"email":"alice@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestUserHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{}, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodPost, "/users/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var session *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.CookieName {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("logout must send the clearing cookie")
	}
	// Parsed back from the wire, Max-Age=0 surfaces as a negative MaxAge.
	if session.Value != "" || session.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got value=%q maxage=%d", session.Value, session.MaxAge)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := newTestEcho()
	admin := domain.Principal{UserID: "user_9", Role: domain.RoleAdmin}
	stub := &stubUserService{
		listFn: func(_ context.Context, p domain.Principal) ([]domain.User, error) {
			if p.UserID != admin.UserID {
				t.Fatalf("principal not forwarded: %+v", p)
			}
			return []domain.User{{ID: "user_1", Email: "alice@example.com", Role: domain.RoleUser}}, nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, stub, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodGet, "/users", "")
	c.Set("principal", admin)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getFn: func(_ context.Context, p domain.Principal, id string) (*domain.User, error) {
			if id != "user_2" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: id, Email: "bob@example.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, stub, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodGet, "/users/user_2", "")
	c.SetParamNames("id")
	c.SetParamValues("user_2")
	c.Set("principal", domain.Principal{UserID: "user_2", Role: domain.RoleUser})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_DeleteOwn(t *testing.T) {
	e := newTestEcho()
	me := domain.Principal{UserID: "user_1", Role: domain.RoleUser}
	called := false
	stub := &stubUserService{
		deleteOwnFn: func(_ context.Context, p domain.Principal) error {
			called = true
			if p.UserID != me.UserID {
				t.Fatalf("unexpected principal: %+v", p)
			}
			return nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, stub, testCookies(), true)

	c, rec := jsonRequest(e, http.MethodDelete, "/users/me", "")
	c.Set("principal", me)
	if err := h.DeleteOwn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected delete call and 200, got %d", rec.Code)
	}
}
