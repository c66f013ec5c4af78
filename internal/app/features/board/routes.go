package board

import (
	"github.com/fedl/labsite/internal/app/features/gallery"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the board pages and the gallery partials under /board.
func Routes(h *Handler, g *gallery.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/search", h.ServeSearch)
	r.Get("/{type}", h.ServeType)
	r.Mount("/gallery/{id}", gallery.Routes(g))
	return r
}
