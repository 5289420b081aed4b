// internal/app/features/messages/handler.go

// Package messages is the admin inbox for contact-form submissions.
package messages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	messagestore "github.com/mzielinska/promyk/internal/app/store/messages"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the message inbox handlers.
type Handler struct {
	Store *messagestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: messagestore.New(db), Log: logger}
}

// ServeList returns every message, newest first, as a bare array.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "messages list")
	defer cancel()

	msgs, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Error("list messages failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, msgs)
}

// HandleSetStatus sets a message's status. Any known status can be
// set from any other; there is no workflow ordering.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowy identyfikator")
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := httpjson.Decode(r, &payload); err != nil || !models.IsValidMessageStatus(payload.Status) {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowy status")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "message set status")
	defer cancel()

	if err := h.Store.SetStatus(ctx, id, payload.Status); err != nil {
		h.Log.Error("set message status failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleDelete removes a message permanently.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowy identyfikator")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "message delete")
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete message failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !deleted {
		h.Log.Warn("delete message matched nothing", zap.String("id", id.Hex()))
	}
	httpjson.Message(w, http.StatusOK, "Wiadomość usunięta pomyślnie")
}
