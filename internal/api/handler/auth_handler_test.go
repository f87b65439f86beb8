package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/promontazh/landing-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, password string) (string, error)
	logoutFn func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Login(ctx context.Context, password string) (string, error) {
	return s.loginFn(ctx, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, password string) (string, error) {
			if password != "admin123" {
				t.Fatalf("unexpected password: %s", password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/login", `{"password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/login", `{"password":"guess"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, password string) (string, error) {
			t.Fatal("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/login", "{")
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var closed string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			closed = sessionID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/logout", "")
	c.Set("session_id", "sid-42")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if closed != "sid-42" {
		t.Fatalf("expected session sid-42 closed, got %q", closed)
	}
}

// Logout without the middleware-injected session id is a 401, not a panic.
func TestAuthHandler_Logout_NoClaims(t *testing.T) {
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			t.Fatal("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/v1/admin/logout", "")

	err := h.Logout(c)
	if err == nil {
		t.Fatal("expected an error")
	}
}
