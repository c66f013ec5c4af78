// internal/app/features/research/handler.go
package research

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/navigation"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the research detail pages.
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

type topicLink struct {
	Title  string
	Href   string
	Active bool
}

type pageData struct {
	viewdata.BaseVM

	Topic string
	Found bool
	Area  models.ResearchArea
	// Topics is the sidebar, in display order.
	Topics []topicLink
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /research/{topic}                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeTopic(w http.ResponseWriter, r *http.Request) {
	data := h.buildData(r, chi.URLParam(r, "topic"))
	h.Metrics.RecordPageView(string(viewrouter.KindResearch))
	templates.Render(w, r, "research_detail", data)
}

func (h *Handler) buildData(r *http.Request, topic string) pageData {
	area, found := h.Content.ResearchArea(topic)

	title := "Research"
	if found {
		title = area.DetailTitle
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, h.Content.Site(), viewrouter.KindResearch, title, "/"),
		Topic:  topic,
		Found:  found,
		Area:   area,
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.DetailBackURL)

	for _, a := range h.Content.Research() {
		v := viewrouter.ResearchDetail{Topic: string(a.Topic)}
		data.Topics = append(data.Topics, topicLink{
			Title:  a.Title,
			Href:   "#" + v.Fragment(),
			Active: a.Topic == area.Topic && found,
		})
	}
	return data
}
