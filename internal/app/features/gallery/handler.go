package gallery

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the HTMX card and lightbox partials.
type Handler struct {
	Content *content.Store
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(store *content.Store, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Content: store,
		Metrics: m,
		Log:     logger,
	}
}

// item looks up a gallery post by the {id} URL param.
func (h *Handler) item(r *http.Request) (models.BoardItem, bool) {
	it, ok := h.Content.BoardItem(chi.URLParam(r, "id"))
	if !ok || it.Type != models.BoardGallery {
		return models.BoardItem{}, false
	}
	return it, true
}

func indexParam(r *http.Request) int {
	i, err := strconv.Atoi(query.Get(r, "i"))
	if err != nil {
		return 0
	}
	return i
}

// renderNothing answers a partial request for a post that is gone or has no
// images. HTMX swaps the empty body in, so the card or overlay disappears.
func (h *Handler) renderNothing(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("gallery partial has nothing to show", zap.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

// ServeCard handles GET /board/gallery/{id}/card?i=&dir=.
func (h *Handler) ServeCard(w http.ResponseWriter, r *http.Request) {
	it, ok := h.item(r)
	if !ok {
		h.renderNothing(w, r)
		return
	}
	card, ok := Step(it, indexParam(r), query.Get(r, "dir"))
	if !ok {
		h.renderNothing(w, r)
		return
	}
	h.Metrics.RecordCarouselStep("card")
	templates.RenderSnippet(w, "gallery_card_snippet", card)
}

// ServeLightbox handles GET /board/gallery/{id}/lightbox?i=&key=. A closed
// lightbox renders an empty fragment so HTMX clears the overlay.
func (h *Handler) ServeLightbox(w http.ResponseWriter, r *http.Request) {
	it, ok := h.item(r)
	if !ok {
		h.renderNothing(w, r)
		return
	}
	lb, ok := OpenLightbox(it, indexParam(r), query.Get(r, "key"))
	if !ok {
		h.renderNothing(w, r)
		return
	}
	h.Metrics.RecordCarouselStep("lightbox")
	templates.RenderSnippet(w, "gallery_lightbox_snippet", lb)
}
