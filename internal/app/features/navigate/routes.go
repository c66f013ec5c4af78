package navigate

import "github.com/go-chi/chi/v5"

// Routes is mounted at /go. The bare path stands for the "#" link.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/fragments.json", h.ServeTable)
	r.Get("/", h.ServeFragment)
	r.Get("/{fragment}", h.ServeFragment)
	return r
}
