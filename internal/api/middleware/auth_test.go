package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transitpulse/transit-api/internal/core/domain"
	"github.com/transitpulse/transit-api/internal/core/token"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret")
	signed, err := codec.Issue(domain.IdentityClaim{Username: "passenger1", Role: domain.RolePassenger}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("username") != "passenger1" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != domain.RolePassenger {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func requireUnauthorized(t *testing.T, setup func(req *http.Request)) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	setup(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(token.NewCodec("secret"))
	handler := mw(func(c echo.Context) error {
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

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	requireUnauthorized(t, func(*http.Request) {})
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	requireUnauthorized(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Token abc")
	})
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	requireUnauthorized(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-token")
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	signed, err := token.NewCodec("secret").Issue(domain.IdentityClaim{Username: "driver1", Role: domain.RoleDriver}, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	requireUnauthorized(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
}

func TestAuthMiddleware_ForeignSignature(t *testing.T) {
	signed, err := token.NewCodec("other-secret").Issue(domain.IdentityClaim{Username: "admin1", Role: domain.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	requireUnauthorized(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
}
