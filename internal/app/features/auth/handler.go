// internal/app/features/auth/handler.go

// Package auth exposes the admin login endpoints.
package auth

import (
	"net/http"

	"github.com/mzielinska/promyk/internal/app/system/auth"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/inputval"
	"go.uber.org/zap"
)

// Handler owns the login/logout/verify handlers.
type Handler struct {
	Guard *auth.Guard
	Log   *zap.Logger
}

// NewHandler constructs a Handler over the session guard.
func NewHandler(guard *auth.Guard, logger *zap.Logger) *Handler {
	return &Handler{Guard: guard, Log: logger}
}

// HandleLogin checks the PIN and issues the session cookie. Format is
// validated before the PIN is compared; the attempted PIN is never
// logged.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload inputval.LoginPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "PIN musi składać się z 11 cyfr")
		return
	}
	// Struct tags catch missing/short input; ValidPINFormat is the
	// stricter digits-only gate (validator's numeric allows signs).
	if err := inputval.Struct(payload); err != nil || !auth.ValidPINFormat(payload.Pin) {
		httpjson.Message(w, http.StatusBadRequest, "PIN musi składać się z 11 cyfr")
		return
	}
	if !h.Guard.Matches(payload.Pin) {
		h.Log.Warn("failed admin login attempt", zap.String("remote", r.RemoteAddr))
		httpjson.Message(w, http.StatusUnauthorized, "Nieprawidłowy PIN")
		return
	}

	h.Guard.IssueSession(w)
	h.Log.Info("admin logged in", zap.String("remote", r.RemoteAddr))
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleLogout clears the session cookie.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Guard.ClearSession(w)
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// ServeVerify reports whether the request carries a valid session.
func (h *Handler) ServeVerify(w http.ResponseWriter, r *http.Request) {
	if !h.Guard.IsAuthenticated(r) {
		httpjson.Write(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"authenticated": true})
}
