// internal/app/system/auth/auth_test.go
package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mzielinska/promyk/internal/app/system/auth"
	"go.uber.org/zap"
)

func newGuard() *auth.Guard {
	return auth.NewGuard("12345678901", false, zap.NewNop())
}

func TestValidPINFormat(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"12345678901", true},
		{"00000000000", true},
		{"", false},
		{"1234567890", false},   // 10 digits
		{"123456789012", false}, // 12 digits
		{"1234567890a", false},
		{"12345 78901", false},
		{"-2345678901", false},
	}
	for _, tt := range tests {
		if got := auth.ValidPINFormat(tt.pin); got != tt.want {
			t.Errorf("ValidPINFormat(%q) = %v, want %v", tt.pin, got, tt.want)
		}
	}
}

func TestGuard_Matches(t *testing.T) {
	g := newGuard()
	if !g.Matches("12345678901") {
		t.Error("expected correct PIN to match")
	}
	if g.Matches("12345678902") {
		t.Error("expected wrong PIN not to match")
	}
}

func TestGuard_SessionCookieAttributes(t *testing.T) {
	g := newGuard()
	rec := httptest.NewRecorder()
	g.IssueSession(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != auth.CookieName {
		t.Errorf("cookie name = %q, want %q", c.Name, auth.CookieName)
	}
	if c.Value != "authenticated" {
		t.Errorf("cookie value = %q, want %q", c.Value, "authenticated")
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("expected SameSite=Strict")
	}
	if c.MaxAge != 24*60*60 {
		t.Errorf("cookie MaxAge = %d, want %d", c.MaxAge, 24*60*60)
	}
}

func TestGuard_IsAuthenticated(t *testing.T) {
	g := newGuard()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"exact sentinel", "authenticated", true},
		{"wrong value", "nope", false},
		{"prefix", "authenticated-extra", false},
		{"different case", "Authenticated", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/hero", nil)
			r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.value})
			if got := g.IsAuthenticated(r); got != tt.want {
				t.Errorf("IsAuthenticated = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/hero", nil)
		if g.IsAuthenticated(r) {
			t.Error("expected request without cookie to be unauthenticated")
		}
	})
}

func TestGuard_RequireAdmin(t *testing.T) {
	g := newGuard()
	called := false
	h := g.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Unauthorized") {
			t.Errorf("body = %q, want Unauthorized message", rec.Body.String())
		}
		if called {
			t.Error("handler should not run for unauthenticated request")
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "authenticated"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if !called {
			t.Error("handler should run for authenticated request")
		}
	})
}

func TestGuard_ClearSession(t *testing.T) {
	g := newGuard()
	rec := httptest.NewRecorder()
	g.ClearSession(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected expired cookie, got MaxAge %d", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("expected empty value, got %q", cookies[0].Value)
	}
}
