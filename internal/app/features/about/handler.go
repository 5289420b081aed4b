// internal/app/features/about/handler.go

// Package about serves the "o nas" section and the photo carousel
// nested inside it.
package about

import (
	"errors"
	"net/http"

	"github.com/mzielinska/promyk/internal/app/features/sections"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/app/system/httpjson"
	"github.com/mzielinska/promyk/internal/app/system/timeouts"
	"github.com/mzielinska/promyk/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the about-section and carousel handlers.
type Handler struct {
	Sections *sections.Handler[models.AboutData, *models.AboutData]
	Carousel *contentstore.CarouselStore
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database
// and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Sections: sections.NewHandler(contentstore.About(db), "aboutData", logger),
		Carousel: contentstore.NewCarousel(db),
		Log:      logger,
	}
}

// ServeCarousel returns the carousel, null when the about section
// does not exist yet.
func (h *Handler) ServeCarousel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "carousel get")
	defer cancel()

	c, err := h.Carousel.Get(ctx)
	if err != nil {
		h.Log.Error("load carousel failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"carousel": c})
}

// HandleReplaceCarousel overwrites the whole carousel section.
func (h *Handler) HandleReplaceCarousel(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Carousel models.Carousel `json:"carousel"`
	}
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "carousel replace")
	defer cancel()

	if err := h.Carousel.Replace(ctx, payload.Carousel); err != nil {
		h.carouselError(w, "replace carousel failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleAddCarouselImage appends a slide.
func (h *Handler) HandleAddCarouselImage(w http.ResponseWriter, r *http.Request) {
	var img models.CarouselImage
	if err := httpjson.Decode(r, &img); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}
	if img.URL == "" {
		httpjson.Error(w, http.StatusBadRequest, "URL zdjęcia jest wymagany")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "carousel add image")
	defer cancel()

	added, err := h.Carousel.AddImage(ctx, img)
	if err != nil {
		h.carouselError(w, "add carousel image failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true, "image": added})
}

// HandleUpdateCarouselImage merges a partial update into one slide.
func (h *Handler) HandleUpdateCarouselImage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ImageID     string  `json:"imageId"`
		URL         *string `json:"url"`
		Alt         *string `json:"alt"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Order       *int    `json:"order"`
	}
	if err := httpjson.Decode(r, &payload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Nieprawidłowe dane")
		return
	}
	if payload.ImageID == "" {
		httpjson.Error(w, http.StatusBadRequest, "imageId jest wymagany")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "carousel update image")
	defer cancel()

	patch := contentstore.CarouselImagePatch{
		URL:         payload.URL,
		Alt:         payload.Alt,
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
	}
	if err := h.Carousel.UpdateImage(ctx, payload.ImageID, patch); err != nil {
		h.carouselError(w, "update carousel image failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

// HandleRemoveCarouselImage deletes a slide by the imageId query
// parameter.
func (h *Handler) HandleRemoveCarouselImage(w http.ResponseWriter, r *http.Request) {
	imageID := r.URL.Query().Get("imageId")
	if imageID == "" {
		httpjson.Error(w, http.StatusBadRequest, "imageId jest wymagany")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "carousel remove image")
	defer cancel()

	if err := h.Carousel.RemoveImage(ctx, imageID); err != nil {
		h.carouselError(w, "remove carousel image failed", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) carouselError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, contentstore.ErrAboutMissing) {
		httpjson.Error(w, http.StatusNotFound, "Nie znaleziono danych o nas")
		return
	}
	h.Log.Error(msg, zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "Błąd serwera")
}
