// internal/app/features/notifysettings/handler.go

// Package notifysettings manages the email-notification settings for
// contact-form submissions. Its envelopes differ from the other
// sections and are kept as the admin panel expects them.
package notifysettings

import (
	"net/http"

	"github.com/mzielinska/promyk/internal/app/features/sections"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the notification-settings handlers.
type Handler struct {
	Store    *contentstore.Singleton[models.NotificationSettings, *models.NotificationSettings]
	Sections *sections.Handler[models.NotificationSettings, *models.NotificationSettings]
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	store := contentstore.Notifications(db)
	return &Handler{
		Store:    store,
		Sections: sections.NewHandler(store, "settings", logger),
		Log:      logger,
	}
}

// ServeGet returns the settings document bare, null when absent.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "notification settings get")
	defer cancel()

	doc, found, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("load notification settings failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !found {
		httpjson.Write(w, http.StatusOK, nil)
		return
	}
	httpjson.Write(w, http.StatusOK, doc)
}

// HandleCreate creates the settings document and returns it wrapped
// under "settings".
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.Sections.HandleCreate(w, r)
}

// HandleUpdate updates the settings document. The payload must carry
// the document's _id.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := httpjson.Decode(r, &fields); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	rawID, _ := fields["_id"].(string)
	if rawID == "" {
		httpjson.Error(w, http.StatusBadRequest, "ID is required")
		return
	}
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "ID is required")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "notification settings update")
	defer cancel()

	if err := h.Store.Update(ctx, id, bson.M(fields)); err != nil {
		h.Log.Error("update notification settings failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Message(w, http.StatusOK, "Ustawienia powiadomień zaktualizowane")
}
