// internal/app/features/about/routes.go
package about

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter for the about section. Unlike
// the other sections, about also supports POST.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Sections.ServeGet)
	r.Post("/", h.Sections.HandleCreate)
	r.Put("/", h.Sections.HandleUpsert)
	r.Patch("/field", h.Sections.HandlePatchField)
	return r
}

// CarouselRoutes returns the admin subrouter mounted at /carousel.
func CarouselRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCarousel)
	r.Put("/", h.HandleReplaceCarousel)
	r.Post("/images", h.HandleAddCarouselImage)
	r.Put("/images", h.HandleUpdateCarouselImage)
	r.Delete("/images", h.HandleRemoveCarouselImage)
	return r
}
