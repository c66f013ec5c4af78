package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Routes is mounted at /api. Every route is a GET.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/site", h.site)
	r.Get("/counts", h.counts)
	r.Get("/research", h.research)
	r.Get("/research/{topic}", h.researchArea)
	r.Get("/publications", h.publications)
	r.Get("/publications/{period}", h.period)
	r.Get("/members", h.members)
	r.Get("/board", h.board)
	return r
}
