// internal/app/features/sections/routes.go
package sections

import (
	"github.com/go-chi/chi/v5"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
)

// Routes returns the standard admin subrouter for a singleton
// section: GET, PUT upsert, and the single-field PATCH.
func Routes[T any, P contentstore.Stamper[T]](h *Handler[T, P]) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Put("/", h.HandleUpsert)
	r.Patch("/field", h.HandlePatchField)
	return r
}
