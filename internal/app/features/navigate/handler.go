// Package navigate resolves anchor fragments for the client script. Every
// same-document link on the site ("#board-news", "#research", "#") is sent
// here with the path it was clicked on, and the answer says whether the
// browser should load another view, scroll, or both.
package navigate

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves /go.
type Handler struct {
	HeaderOffset int
	Metrics      *metrics.Metrics
	Log          *zap.Logger
}

func NewHandler(headerOffset int, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		HeaderOffset: headerOffset,
		Metrics:      m,
		Log:          logger,
	}
}

// Result is the JSON answer for one intercepted link.
type Result struct {
	Action   viewrouter.Action `json:"action"`
	View     viewrouter.Kind   `json:"view"`
	Location string            `json:"location,omitempty"`
	Scroll   viewrouter.Scroll `json:"scroll"`
	Deferred bool              `json:"deferred"`
}

// Resolve runs href through a controller that starts on the view at from.
// A from path outside the view routes is treated as the landing page.
func (h *Handler) Resolve(from, href string) Result {
	v, ok := viewrouter.FromPath(from)
	if !ok {
		v = viewrouter.Main{}
	}
	c := viewrouter.NewControllerAt(v, viewrouter.Options{HeaderOffset: h.HeaderOffset})
	t := c.Intercept(href)

	res := Result{
		Action:   t.Action,
		View:     t.View.Kind(),
		Scroll:   t.Scroll,
		Deferred: t.Deferred,
	}
	switch {
	case t.Action == viewrouter.ActionNavigate:
		res.Location = t.View.Path()
	case t.Deferred:
		res.Location = sectionURL(t.Scroll.Target)
	}
	return res
}

func sectionURL(target string) string {
	return viewrouter.Main{}.Path() + "?" + url.Values{"section": {target}}.Encode()
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /go/{fragment}?from=                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeFragment answers with JSON when asked for it and redirects otherwise,
// so the links keep working without the client script.
func (h *Handler) ServeFragment(w http.ResponseWriter, r *http.Request) {
	from := query.Get(r, "from")
	if from == "" {
		from = viewrouter.Main{}.Path()
	}
	res := h.Resolve(from, "#"+chi.URLParam(r, "fragment"))
	h.Metrics.RecordFragment(string(res.Action))

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			h.Log.Warn("encode fragment result", zap.Error(err))
		}
		return
	}

	loc := res.Location
	if loc == "" {
		// Immediate scroll on the landing page.
		loc = sectionURL(res.Scroll.Target)
	}
	http.Redirect(w, r, loc, http.StatusSeeOther)
}

// ServeTable publishes the fragment vocabulary.
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(viewrouter.Fragments()); err != nil {
		h.Log.Warn("encode fragment table", zap.Error(err))
	}
}

func wantsJSON(r *http.Request) bool {
	if query.Get(r, "format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
