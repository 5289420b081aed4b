// internal/app/features/collection/routes.go
package collection

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter for one archivable collection.
func Routes[T any, P Archivable[T]](h *Handler[T, P]) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleArchive)
	return r
}
