// Package api is the read-only JSON view of the lab content.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/filter"
	"github.com/fedl/labsite/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves /api.
type Handler struct {
	Content        *content.Store
	BaseURL        string
	AllowedOrigins []string
	Log            *zap.Logger
}

func NewHandler(store *content.Store, baseURL string, origins []string, logger *zap.Logger) *Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Handler{
		Content:        store,
		BaseURL:        strings.TrimSuffix(baseURL, "/"),
		AllowedOrigins: origins,
		Log:            logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type periodSummary struct {
	Key      models.PeriodKey `json:"key"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Label    string           `json:"label"`
	Count    int              `json:"count"`
	Self     string           `json:"self"`
}

type listResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

func list[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Count: len(items), Items: items}
}

// GET /api/site
func (h *Handler) site(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Content.Site())
}

// GET /api/counts
func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Content.Counts())
}

// GET /api/research
func (h *Handler) research(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, list(h.Content.Research()))
}

// GET /api/research/{topic}
func (h *Handler) researchArea(w http.ResponseWriter, r *http.Request) {
	a, ok := h.Content.ResearchArea(chi.URLParam(r, "topic"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "research area not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// GET /api/publications
func (h *Handler) publications(w http.ResponseWriter, r *http.Request) {
	periods := h.Content.Publications()
	out := make([]periodSummary, 0, len(periods))
	for _, p := range periods {
		out = append(out, periodSummary{
			Key:      p.Key,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Label:    p.Label,
			Count:    p.Count(),
			Self:     h.BaseURL + "/api/publications/" + string(p.Key),
		})
	}
	h.writeJSON(w, http.StatusOK, list(out))
}

// GET /api/publications/{period}
func (h *Handler) period(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Content.Period(chi.URLParam(r, "period"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "publication period not found"})
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// GET /api/members?category=
func (h *Handler) members(w http.ResponseWriter, r *http.Request) {
	items := h.Content.Members()
	if c := r.URL.Query().Get("category"); c != "" {
		items = filter.ByCategory(items, c)
	}
	h.writeJSON(w, http.StatusOK, list(items))
}

// GET /api/board?type=&q=
func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	items := h.Content.Board()
	if t := r.URL.Query().Get("type"); t != "" {
		items = filter.ByType(items, t)
	}
	items = filter.TextSearch(items, r.URL.Query().Get("q"))
	h.writeJSON(w, http.StatusOK, list(items))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("encode api response", zap.Error(err))
	}
}
