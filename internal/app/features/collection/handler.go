// internal/app/features/collection/handler.go

// Package collection implements the shared handler for archivable
// content collections (projects, events, partners, wards). All four
// share the same list/create/update/archive semantics; per-type
// differences hang off the Before hooks.
package collection

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Archivable is satisfied by pointers to models carrying both the
// Meta stamp and an isActive flag.
type Archivable[T any] interface {
	contentstore.Stamper[T]
	MarkActive()
}

// ConflictError marks a duplicate detected by a Before hook. The
// handler reports it as a 409 with the hook's message.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Handler serves one archivable collection.
type Handler[T any, P Archivable[T]] struct {
	Store *contentstore.Collection[T, P]
	Label string
	Log   *zap.Logger

	// BeforeCreate runs after decoding and before insert. It may
	// normalize the document or veto the create.
	BeforeCreate func(ctx context.Context, doc *T) error
	// BeforeUpdate runs on the decoded field set before persisting.
	// The id identifies the record being updated so duplicate checks
	// can exclude it.
	BeforeUpdate func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
}

// ServeList returns every record including archived ones, newest
// first, as a bare array.
func (h *Handler[T, P]) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.Label+" list")
	defer cancel()

	docs, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Error("list failed", zap.String("collection", h.Label), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, docs)
}

// ServeActiveList returns only publicly visible records as a bare
// array. Mounted on the public router.
func (h *Handler[T, P]) ServeActiveList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.Label+" active list")
	defer cancel()

	docs, err := h.Store.Active(ctx)
	if err != nil {
		h.Log.Error("active list failed", zap.String("collection", h.Label), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, docs)
}

// HandleCreate inserts a record and returns it as stored. New records
// are always active.
func (h *Handler[T, P]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var doc T
	if err := httpjson.Decode(r, &doc); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.Label+" create")
	defer cancel()

	if h.BeforeCreate != nil {
		if err := h.BeforeCreate(ctx, &doc); err != nil {
			h.hookError(w, err)
			return
		}
	}
	P(&doc).MarkActive()

	created, err := h.Store.Create(ctx, doc)
	if err != nil {
		h.Log.Error("create failed", zap.String("collection", h.Label), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// HandleUpdate merge-updates the record with the given id. An unknown
// id is a silent no-op; the panel has always been told success.
func (h *Handler[T, P]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var fields map[string]any
	if err := httpjson.Decode(r, &fields); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.Label+" update")
	defer cancel()

	set := bson.M(fields)
	if h.BeforeUpdate != nil {
		if err := h.BeforeUpdate(ctx, id, set); err != nil {
			h.hookError(w, err)
			return
		}
	}
	if err := h.Store.Update(ctx, id, set); err != nil {
		h.Log.Error("update failed", zap.String("collection", h.Label), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleArchive soft-deletes the record. The document stays in the
// collection with isActive=false.
func (h *Handler[T, P]) HandleArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, h.Label+" archive")
	defer cancel()

	if err := h.Store.Archive(ctx, id); err != nil {
		h.Log.Error("archive failed", zap.String("collection", h.Label), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler[T, P]) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowy identyfikator")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler[T, P]) hookError(w http.ResponseWriter, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		httpjson.Message(w, http.StatusConflict, conflict.Message)
		return
	}
	h.Log.Error("hook failed", zap.String("collection", h.Label), zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
}
