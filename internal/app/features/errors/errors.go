// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it reads the site settings and renders templates.
type Handler struct {
	Content *content.Store
}

// NewHandler constructs an errors Handler.
func NewHandler(store *content.Store) *Handler {
	return &Handler{Content: store}
}

// NotFound renders the friendly "page not found" page with a 404 status.
// It is installed as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "Page not found",
		"The page you are looking for does not exist or has moved.")
}

// MethodNotAllowed renders the same page with a 405 status.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusMethodNotAllowed, "Not allowed",
		"This page is read-only.")
}
