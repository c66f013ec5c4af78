// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
)

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title, msg string) {
	var site models.SiteSettings
	if h.Content != nil {
		site = h.Content.Site()
	}

	data := pageData{
		// Error pages use the light navbar like every detail view.
		BaseVM:  viewdata.NewBaseVM(r, site, viewrouter.KindContact, title, "/"),
		Message: msg,
	}
	data.Kind = "error"

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
