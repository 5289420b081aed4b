// internal/app/features/images/routes.go
package images

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter for image management.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleUpload)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
