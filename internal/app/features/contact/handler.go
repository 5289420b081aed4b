// internal/app/features/contact/handler.go

// Package contact handles public contact-form submissions: persist
// the message, then best-effort notify the admin by email.
package contact

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	messagestore "github.com/mzielinska/promyk/internal/app/store/messages"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/inputval"
	"github.com/mzielinska/promyk/internal/app/system/mailer"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the contact-form submission handler.
type Handler struct {
	Messages *messagestore.Store
	Settings *contentstore.Singleton[models.NotificationSettings, *models.NotificationSettings]
	Mail     mailer.Sender
	// AdminEmail is the fallback recipient when the notification
	// settings carry no address.
	AdminEmail string
	Log        *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database,
// mail sender, fallback admin address, and logger.
func NewHandler(db *mongo.Database, mail mailer.Sender, adminEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		Messages:   messagestore.New(db),
		Settings:   contentstore.Notifications(db),
		Mail:       mail,
		AdminEmail: adminEmail,
		Log:        logger,
	}
}

// HandleSubmit processes POST /api/public/contact. The message is
// persisted first; the notification email is strictly best-effort and
// its failure never changes the response.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload inputval.ContactFormPayload
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Wszystkie pola są wymagane")
		return
	}
	if err := inputval.Struct(payload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "contact submit")
	defer cancel()

	// Fields are persisted exactly as submitted; the admin panel and
	// the notification template both expect the sender's own text.
	msg, err := h.Messages.Create(ctx, models.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		h.Log.Error("persist contact message failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Wystąpił błąd podczas wysyłania wiadomości")
		return
	}
	h.Log.Info("contact message stored", zap.String("id", msg.ID.Hex()))

	h.notify(ctx, msg)

	httpjson.Write(w, http.StatusOK, map[string]any{
		"message": "Wiadomość została wysłana pomyślnie",
		"success": true,
	})
}

// notify sends the admin notification. Failures are logged and
// swallowed; the submission already succeeded.
func (h *Handler) notify(ctx context.Context, msg models.ContactMessage) {
	settings, found, err := h.Settings.Get(ctx)
	if err != nil {
		h.Log.Warn("load notification settings failed", zap.Error(err))
		return
	}

	to := h.AdminEmail
	subject, tmpl := "", ""
	if found {
		if !settings.EmailNotifications.Enabled {
			return
		}
		if settings.EmailNotifications.AdminEmail != "" {
			to = settings.EmailNotifications.AdminEmail
		}
		subject = settings.EmailNotifications.Subject
		tmpl = settings.EmailNotifications.Template
	}
	if to == "" {
		h.Log.Warn("no notification recipient configured")
		return
	}

	email := mailer.BuildNotificationEmail(to, subject, tmpl, mailer.NotificationData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
		Date:    time.Now(),
	})
	if err := h.Mail.Send(ctx, email); err != nil {
		h.Log.Warn("notification email failed",
			zap.String("messageId", msg.ID.Hex()),
			zap.Error(err))
		return
	}
	h.Log.Info("notification email sent", zap.String("messageId", msg.ID.Hex()))
}

// validationMessage maps a validator error to the form's two
// user-facing strings: missing fields first, then email format.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return "Wszystkie pola są wymagane"
			}
		}
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return "Nieprawidłowy format adresu email"
			}
		}
	}
	return "Wszystkie pola są wymagane"
}
