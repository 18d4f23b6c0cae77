package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTMiddleware(testJWTConfig())
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	err := h(c)
	if err == nil {
		t.Fatal("expected error for missing authorization header")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_BadFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTMiddleware(testJWTConfig())
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	if err := h(c); err == nil {
		t.Fatal("expected error for non-bearer authorization")
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := IssueToken(cfg, "doctor-42", "drjones")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTMiddleware(cfg)
	h := mw(func(c echo.Context) error {
		ctx := c.Request().Context()
		if DoctorIDFromContext(ctx) != "doctor-42" {
			t.Errorf("expected doctor-42 on context, got %q", DoctorIDFromContext(ctx))
		}
		if UsernameFromContext(ctx) != "drjones" {
			t.Errorf("expected drjones on context, got %q", UsernameFromContext(ctx))
		}
		return c.String(http.StatusOK, "ok")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_TamperedToken(t *testing.T) {
	cfg := testJWTConfig()
	signed, _ := IssueToken(cfg, "doctor-42", "drjones")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed+"x")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTMiddleware(cfg)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	if err := h(c); err == nil {
		t.Fatal("expected error for tampered token")
	}
}
