// internal/app/features/auth/handler_test.go
package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authfeature "github.com/mzielinska/promyk/internal/app/features/auth"
	"github.com/mzielinska/promyk/internal/app/system/auth"
	"github.com/mzielinska/promyk/internal/testutil"
	"go.uber.org/zap"
)

const testPIN = "12345678901"

func newHandler() *authfeature.Handler {
	return authfeature.NewHandler(auth.NewGuard(testPIN, false, zap.NewNop()), zap.NewNop())
}

func TestHandleLogin(t *testing.T) {
	cases := []struct {
		name       string
		pin        string
		wantStatus int
		wantMsg    string
	}{
		{"correct pin", testPIN, http.StatusOK, ""},
		{"wrong pin", "10987654321", http.StatusUnauthorized, "Nieprawidłowy PIN"},
		{"too short", "12345", http.StatusBadRequest, "PIN musi składać się z 11 cyfr"},
		{"non numeric", "1234567890a", http.StatusBadRequest, "PIN musi składać się z 11 cyfr"},
		{"signed digits", "+1234567890", http.StatusBadRequest, "PIN musi składać się z 11 cyfr"},
		{"empty", "", http.StatusBadRequest, "PIN musi składać się z 11 cyfr"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandler()
			rec := httptest.NewRecorder()
			h.HandleLogin(rec, testutil.JSONRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": tc.pin}))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantMsg != "" {
				var resp struct {
					Message string `json:"message"`
				}
				testutil.DecodeJSON(t, rec, &resp)
				if resp.Message != tc.wantMsg {
					t.Errorf("message = %q, want %q", resp.Message, tc.wantMsg)
				}
			}
		})
	}
}

func TestHandleLogin_IssuesSessionCookie(t *testing.T) {
	h := newHandler()
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, testutil.JSONRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": testPIN}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("no session cookie issued")
	}
	if session.Value != "authenticated" {
		t.Errorf("cookie value = %q", session.Value)
	}
	if !session.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
}

func TestHandleLogin_WrongPinLeavesNoSession(t *testing.T) {
	h := newHandler()
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, testutil.JSONRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": "10987654321"}))

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge > 0 {
			t.Error("failed login must not issue a session cookie")
		}
	}
}

func TestHandleLogout_ClearsSession(t *testing.T) {
	h := newHandler()
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, testutil.AsAdmin(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("logout must rewrite the session cookie")
	}
	if session.MaxAge >= 0 && session.Value != "" {
		t.Errorf("cookie not expired: MaxAge=%d Value=%q", session.MaxAge, session.Value)
	}
}

func TestServeVerify(t *testing.T) {
	h := newHandler()

	rec := httptest.NewRecorder()
	h.ServeVerify(rec, httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous verify status = %d, want 401", rec.Code)
	}
	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Authenticated {
		t.Error("anonymous verify must report authenticated=false")
	}

	rec = httptest.NewRecorder()
	h.ServeVerify(rec, testutil.AsAdmin(httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated verify status = %d, want 200", rec.Code)
	}
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.Authenticated {
		t.Error("authenticated verify must report authenticated=true")
	}
}
