// internal/app/features/messages/routes.go
package messages

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter for the message inbox.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Put("/{id}", h.HandleSetStatus)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
