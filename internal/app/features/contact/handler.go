// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM

	Intro       string
	Address     string
	Email       string
	MapEmbedURL string
	MapLinkURL  string
}

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

func (h *Handler) buildData(r *http.Request) pageData {
	site := h.Content.Site()
	return pageData{
		BaseVM:      viewdata.NewBaseVM(r, site, viewrouter.KindContact, "Contact", "/"),
		Intro:       site.ContactIntro,
		Address:     site.Address,
		Email:       site.Email,
		MapEmbedURL: site.MapEmbedURL,
		MapLinkURL:  site.MapLinkURL,
	}
}

func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	h.Metrics.RecordPageView(string(viewrouter.KindContact))
	templates.Render(w, r, "contact", h.buildData(r))
}
