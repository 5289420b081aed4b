// internal/app/features/notifysettings/routes.go
package notifysettings

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter for notification settings.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Post("/", h.HandleCreate)
	r.Put("/", h.HandleUpdate)
	r.Patch("/field", h.Sections.HandlePatchField)
	return r
}
