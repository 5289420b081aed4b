// internal/app/system/auth/auth.go

// Package auth implements the admin session guard. There is a single
// admin identity authenticated by an 11-digit PIN; the session is a
// sentinel cookie checked by exact value, with no server-side state.
package auth

import (
	"net/http"

	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"go.uber.org/zap"
)

const (
	// CookieName is the admin session cookie.
	CookieName = "admin-session"

	// sessionValue is the sentinel the cookie must equal, compared
	// exactly. Any other value, including prefixes or different
	// casing, does not authenticate.
	sessionValue = "authenticated"

	// sessionMaxAge keeps the admin signed in for a day.
	sessionMaxAge = 24 * 60 * 60

	// PINLength is the required PIN length in digits.
	PINLength = 11
)

// Guard checks admin credentials and sessions.
type Guard struct {
	pin    string
	secure bool
	log    *zap.Logger
}

// NewGuard creates a guard for the configured PIN. secure marks the
// session cookie Secure and should be true in prod.
func NewGuard(pin string, secure bool, logger *zap.Logger) *Guard {
	return &Guard{pin: pin, secure: secure, log: logger}
}

// ValidPINFormat reports whether pin is exactly eleven ASCII digits.
// Format is checked before the PIN is ever compared, so a malformed
// attempt cannot learn anything about the real PIN.
func ValidPINFormat(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Matches reports whether pin equals the configured PIN.
func (g *Guard) Matches(pin string) bool {
	return pin == g.pin
}

// IssueSession sets the session cookie on the response.
func (g *Guard) IssueSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionValue,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSession expires the session cookie.
func (g *Guard) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// IsAuthenticated reports whether the request carries a valid admin
// session cookie.
func (g *Guard) IsAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return c.Value == sessionValue
}

// RequireAdmin rejects unauthenticated requests with a 401 before
// they reach any admin handler. All admin routes sit behind this one
// middleware; handlers never re-check the session themselves.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.IsAuthenticated(r) {
			httpjson.Message(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
