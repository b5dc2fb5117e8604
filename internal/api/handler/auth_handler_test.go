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

	"github.com/dreamladder/backoffice/internal/core/domain"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, email, password string) (string, *domain.AdminUser, error)
	profileFn func(ctx context.Context, userID string) (*domain.AdminUser, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.AdminUser, error) {
	return s.profileFn(ctx, userID)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.AdminUser, error) {
			if email != "admin@dreamladder.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.AdminUser{ID: "user-1", Email: email, Name: "Administrator", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@dreamladder.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["token"] != "token123" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
	user, ok := data["user"].(map[string]any)
	if !ok || user["email"] != "admin@dreamladder.com" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", data["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.AdminUser, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@dreamladder.com","password":"bad"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.AdminUser, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"admin@dreamladder.com"}`)
	err := handler.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		profileFn: func(_ context.Context, userID string) (*domain.AdminUser, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &domain.AdminUser{ID: userID, Email: "admin@dreamladder.com", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set("user_id", "user-1")
	c.Set("role", "admin")

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["id"] != "user-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := data["password_hash"]; leaked {
		t.Fatal("password hash leaked in response")
	}
}
