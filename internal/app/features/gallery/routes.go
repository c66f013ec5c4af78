package gallery

import "github.com/go-chi/chi/v5"

// Routes is mounted under /board/gallery/{id}.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/card", h.ServeCard)
	r.Get("/lightbox", h.ServeLightbox)
	return r
}
