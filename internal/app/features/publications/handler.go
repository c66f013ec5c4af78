// internal/app/features/publications/handler.go
package publications

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/navigation"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultYearNavOffset is the header allowance for year jumps. It is larger
// than the section offset because the archive header is sticky.
const DefaultYearNavOffset = 120

// Handler serves the publication archive pages.
type Handler struct {
	Content       *content.Store
	Metrics       *metrics.Metrics
	YearNavOffset int
	Log           *zap.Logger
}

func NewHandler(store *content.Store, m *metrics.Metrics, yearNavOffset int, logger *zap.Logger) *Handler {
	if yearNavOffset < 0 {
		yearNavOffset = DefaultYearNavOffset
	}
	return &Handler{
		Content:       store,
		Metrics:       m,
		YearNavOffset: yearNavOffset,
		Log:           logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /publications/{period}                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePeriod(w http.ResponseWriter, r *http.Request) {
	data := h.buildData(r, chi.URLParam(r, "period"))
	h.Metrics.RecordPageView(string(viewrouter.KindPublications))
	templates.Render(w, r, "publications_detail", data)
}

func (h *Handler) buildData(r *http.Request, key string) pageData {
	p, found := h.Content.Period(key)

	title := "Publications"
	if found {
		title = p.Title
	}

	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, h.Content.Site(), viewrouter.KindPublications, title, "/"),
		Key:        key,
		Found:      found,
		Heading:    title,
		Subtitle:   p.Subtitle,
		YearOffset: h.YearNavOffset,
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.DetailBackURL)
	if !found {
		return data
	}

	data.Total = p.Count()
	data.Years = buildYears(p)
	if p.HasYearNav() {
		data.YearNav = buildYearNav(p)
	}
	return data
}
