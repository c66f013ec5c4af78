// internal/app/features/members/handler.go
package members

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the roster pages.
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
| GET /members/{category}                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCategory renders one roster category. The slug is taken verbatim so
// an unknown category still renders its own empty state.
func (h *Handler) ServeCategory(w http.ResponseWriter, r *http.Request) {
	data := h.buildData(r, chi.URLParam(r, "category"))
	h.Metrics.RecordPageView(string(viewrouter.KindMembers))
	templates.Render(w, r, "members_detail", data)
}
