// internal/app/features/board/handler.go
package board

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// resultsTarget is the element id HTMX swaps when searching within a type.
const resultsTarget = "board-results"

// Handler serves the board pages.
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

/*─────────────────────────────────────────────────────────────────────────────*
| GET /board/{type}?q=                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeType renders one board type, filtered by ?q= when it is not blank.
// HTMX requests aimed at the results pane get only the results.
func (h *Handler) ServeType(w http.ResponseWriter, r *http.Request) {
	// The raw value is kept: the banner echoes it and matching uses it as typed.
	q := r.URL.Query().Get("q")
	data := h.buildData(r, chi.URLParam(r, "type"), q)

	if !normalize.IsBlank(q) {
		h.Metrics.RecordSearch(data.Type, data.Count)
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == resultsTarget {
		templates.RenderSnippet(w, "board_results", data)
		return
	}

	h.Metrics.RecordPageView(string(viewrouter.KindBoard))
	templates.Render(w, r, "board_detail", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /board/search?q= – landing search form                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeSearch sends a non-blank query to the notice board and a blank one
// back to the board section of the landing page.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, SearchTarget(r.URL.Query().Get("q")), http.StatusSeeOther)
}

// SearchTarget is where the landing search form leads for query q.
func SearchTarget(q string) string {
	if normalize.IsBlank(q) {
		return viewrouter.Main{}.Path() + "?section=board"
	}
	v := viewrouter.BoardDetail{Type: normalize.Slug(string(models.BoardNotice)), Query: q}
	return v.Path()
}
