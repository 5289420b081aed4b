// internal/app/features/images/handler.go

// Package images manages uploaded media: multipart upload into file
// storage plus a metadata record per file.
package images

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	imagestore "github.com/mzielinska/promyk/internal/app/store/images"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxUploadBytes caps a single image at 5 MB.
const maxUploadBytes = 5 << 20

// Handler owns the image management handlers.
type Handler struct {
	Store   *imagestore.Store
	Storage storage.Store
	Log     *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database,
// file storage, and logger.
func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: imagestore.New(db), Storage: store, Log: logger}
}

// ServeList returns every image record, newest first, as a bare array.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "images list")
	defer cancel()

	imgs, err := h.Store.All(ctx)
	if err != nil {
		h.Log.Error("list images failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, imgs)
}

// HandleUpload stores the uploaded file and its metadata record and
// returns the record as stored.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// Extra headroom over the file cap for the multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(maxUploadBytes + 1<<20); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Plik jest za duży (maksymalnie 5MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nie przesłano pliku")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httpjson.Error(w, http.StatusBadRequest, "Dozwolone są tylko pliki graficzne")
		return
	}
	if header.Size > maxUploadBytes {
		httpjson.Error(w, http.StatusBadRequest, "Plik jest za duży (maksymalnie 5MB)")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "image upload")
	defer cancel()

	// images/<timestamp>-<uuid fragment>.<ext>
	ext := filepath.Ext(header.Filename)
	path := fmt.Sprintf("images/%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.Storage.Put(ctx, path, file, opts); err != nil {
		h.Log.Error("store image file failed", zap.String("path", path), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}

	created, err := h.Store.Create(ctx, models.Image{
		Filename:     path,
		OriginalName: header.Filename,
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		URL:          h.Storage.URL(path),
		Size:         header.Size,
		MimeType:     contentType,
	})
	if err != nil {
		h.Log.Error("store image record failed", zap.String("path", path), zap.Error(err))
		// Best effort: don't leave an orphaned binary behind.
		if delErr := h.Storage.Delete(ctx, path); delErr != nil {
			h.Log.Warn("cleanup of orphaned upload failed", zap.String("path", path), zap.Error(delErr))
		}
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}

	h.Log.Info("image uploaded",
		zap.String("path", path),
		zap.String("originalName", header.Filename),
		zap.Int64("size", header.Size))
	httpjson.Write(w, http.StatusOK, created)
}

// HandleUpdate changes an image's title/description.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "image update")
	defer cancel()

	found, err := h.Store.UpdateMeta(ctx, id, payload.Title, payload.Description)
	if err != nil {
		h.Log.Error("update image failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !found {
		httpjson.Error(w, http.StatusNotFound, "Image not found")
		return
	}
	httpjson.Message(w, http.StatusOK, "Image updated successfully")
}

// HandleDelete removes the binary (warn-only on failure) and then the
// metadata record.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "image delete")
	defer cancel()

	img, found, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("load image failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	if !found {
		httpjson.Error(w, http.StatusNotFound, "Image not found")
		return
	}

	if err := h.Storage.Delete(ctx, img.Filename); err != nil {
		h.Log.Warn("delete image file failed", zap.String("path", img.Filename), zap.Error(err))
	}
	if _, err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("delete image record failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Message(w, http.StatusOK, "Image deleted successfully")
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowy identyfikator")
		return primitive.NilObjectID, false
	}
	return id, true
}
