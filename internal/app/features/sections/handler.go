// internal/app/features/sections/handler.go

// Package sections implements the shared handler for singleton page
// sections (hero, about, contact, target, footer). Each section gets
// the same GET/PUT/PATCH behavior; only the store and the response
// wrapper key differ.
package sections

import (
	"encoding/json"
	"io"
	"net/http"

	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/app/system/fieldpath"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves one singleton section.
type Handler[T any, P contentstore.Stamper[T]] struct {
	Store   *contentstore.Singleton[T, P]
	WrapKey string
	Log     *zap.Logger
}

// NewHandler binds a section store to its response wrapper key
// ("heroData", "aboutData", ...).
func NewHandler[T any, P contentstore.Stamper[T]](store *contentstore.Singleton[T, P], wrapKey string, logger *zap.Logger) *Handler[T, P] {
	return &Handler[T, P]{Store: store, WrapKey: wrapKey, Log: logger}
}

// ServeGet returns the section wrapped under its key, or null when
// the section has not been created yet. Shared by the admin and
// public routers.
func (h *Handler[T, P]) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, h.WrapKey+" get")
	defer cancel()

	doc, found, err := h.Store.Get(ctx)
	if err != nil {
		h.Log.Error("load section failed", zap.String("section", h.WrapKey), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !found {
		httpjson.Write(w, http.StatusOK, map[string]any{h.WrapKey: nil})
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{h.WrapKey: doc})
}

// HandleUpsert handles PUT: merge-update when the section exists,
// create it otherwise.
func (h *Handler[T, P]) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.WrapKey+" upsert")
	defer cancel()

	raw, found, err := h.Store.GetRaw(ctx)
	if err != nil {
		h.Log.Error("load section failed", zap.String("section", h.WrapKey), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}

	if found {
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
			return
		}
		id, _ := raw["_id"].(primitive.ObjectID)
		if err := h.Store.Update(ctx, id, bson.M(fields)); err != nil {
			h.Log.Error("update section failed", zap.String("section", h.WrapKey), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
			return
		}
	} else {
		var doc T
		if err := json.Unmarshal(body, &doc); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
			return
		}
		if _, err := h.Store.Create(ctx, doc); err != nil {
			h.Log.Error("create section failed", zap.String("section", h.WrapKey), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
			return
		}
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleCreate handles POST: create the section and return it wrapped.
func (h *Handler[T, P]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var doc T
	if err := httpjson.Decode(r, &doc); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.WrapKey+" create")
	defer cancel()

	created, err := h.Store.Create(ctx, doc)
	if err != nil {
		h.Log.Error("create section failed", zap.String("section", h.WrapKey), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{h.WrapKey: created})
}

type fieldPatch struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// HandlePatchField handles PATCH /field: set a single dotted-path
// field on the stored document and persist the result.
func (h *Handler[T, P]) HandlePatchField(w http.ResponseWriter, r *http.Request) {
	var patch fieldPatch
	if err := httpjson.Decode(r, &patch); err != nil || patch.Field == "" {
		httpjson.Error(w, http.StatusBadRequest, "Pole jest wymagane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.WrapKey+" patch field")
	defer cancel()

	raw, found, err := h.Store.GetRaw(ctx)
	if err != nil {
		h.Log.Error("load section failed", zap.String("section", h.WrapKey), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !found {
		httpjson.Error(w, http.StatusNotFound, "Nie znaleziono danych")
		return
	}

	id, _ := raw["_id"].(primitive.ObjectID)
	updated := fieldpath.Set(raw, patch.Field, patch.Value)
	if err := h.Store.Update(ctx, id, bson.M(updated)); err != nil {
		h.Log.Error("patch field failed",
			zap.String("section", h.WrapKey),
			zap.String("field", patch.Field),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}
