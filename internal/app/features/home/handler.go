package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/features/gallery"
	"github.com/fedl/labsite/internal/app/system/filter"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultPreviewCount is how many rows each board preview shows.
const DefaultPreviewCount = 3

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Content      *content.Store
	Metrics      *metrics.Metrics
	HeaderOffset int
	PreviewCount int
	Log          *zap.Logger
}

func NewHandler(store *content.Store, m *metrics.Metrics, headerOffset, previewCount int, logger *zap.Logger) *Handler {
	if previewCount <= 0 {
		previewCount = DefaultPreviewCount
	}
	return &Handler{
		Content:      store,
		Metrics:      m,
		HeaderOffset: headerOffset,
		PreviewCount: previewCount,
		Log:          logger,
	}
}

type researchCard struct {
	Title       string
	Description string
	Icon        string
	Href        string
}

type periodCard struct {
	Label       string
	Description string
	Image       string
	Href        string
}

type statVM struct {
	Label string
	Value string
}

type professorCard struct {
	Name       string
	Image      string
	ScholarURL string
	Href       string
}

type boardRow struct {
	Title string
	Date  string
	Href  string
}

type homeData struct {
	viewdata.BaseVM

	HeroKicker    string
	HeroLead      string
	HeroVideo     string
	ResearchIntro string

	Research  []researchCard
	Periods   []periodCard
	Stats     []statVM
	Professor *professorCard

	Notices []boardRow
	News    []boardRow
	Gallery []gallery.Card

	// Reveal enables the one-time section reveal on this render.
	Reveal bool
	// Scroll is the section scroll released after render, if any.
	Scroll *viewrouter.Scroll
}

// landingIDs are the element ids the landing template renders. A deferred
// section scroll is dropped unless its target is one of them.
var landingIDs = map[string]bool{
	"research":      true,
	"publications":  true,
	"members":       true,
	"board":         true,
	"board-notice":  true,
	"board-news":    true,
	"board-gallery": true,
}

func hasLandingID(id string) bool { return landingIDs[id] }

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders Main. ?section= carries a section scroll deferred from a
// detail page; it is released once the page is rendered.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := h.buildData(r, query.Get(r, "section"))
	h.Metrics.RecordPageView(string(viewrouter.KindMain))
	templates.Render(w, r, "home", data)
}

func (h *Handler) buildData(r *http.Request, section string) homeData {
	site := h.Content.Site()

	c := viewrouter.NewController(viewrouter.Options{HeaderOffset: h.HeaderOffset})
	c.Resume(section)

	data := homeData{
		BaseVM:        viewdata.NewBaseVM(r, site, viewrouter.KindMain, "", "/"),
		HeroKicker:    site.HeroKicker,
		HeroLead:      site.HeroLead,
		HeroVideo:     site.HeroVideo,
		ResearchIntro: site.ResearchIntro,
		Reveal:        c.RevealEnabled(),
	}
	if s, ok := c.RenderComplete(hasLandingID); ok {
		data.Scroll = &s
	}

	for _, a := range h.Content.Research() {
		data.Research = append(data.Research, researchCard{
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Href:        "#" + viewrouter.ResearchDetail{Topic: string(a.Topic)}.Fragment(),
		})
	}

	for _, p := range h.Content.Publications() {
		if !p.Featured {
			continue
		}
		data.Periods = append(data.Periods, periodCard{
			Label:       p.Label,
			Description: p.Description,
			Image:       p.Image,
			Href:        "#" + viewrouter.PublicationDetail{Period: string(p.Key)}.Fragment(),
		})
	}

	for _, s := range site.Stats {
		data.Stats = append(data.Stats, statVM{Label: s.Label, Value: viewdata.FormatCount(s.Value)})
	}

	if m, ok := h.Content.Professor(); ok {
		data.Professor = &professorCard{
			Name:       m.Name,
			Image:      m.Image,
			ScholarURL: h.Content.Profile().ScholarURL,
			Href:       "#members-professor",
		}
	}

	board := h.Content.Board()
	data.Notices = previewRows(filter.TopN(filter.ByType(board, string(models.BoardNotice)), h.PreviewCount), "#board-notice")
	data.News = previewRows(filter.TopN(filter.ByType(board, string(models.BoardNews)), h.PreviewCount), "#board-news")
	data.Gallery = gallery.Cards(filter.TopN(filter.ByType(board, string(models.BoardGallery)), h.PreviewCount))

	return data
}

func previewRows(items []models.BoardItem, href string) []boardRow {
	rows := make([]boardRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, boardRow{Title: it.Title, Date: it.Date, Href: href})
	}
	return rows
}
