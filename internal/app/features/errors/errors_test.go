package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedl/labsite/internal/testutil"
)

func TestNotFound_Status(t *testing.T) {
	tests := []struct {
		name   string
		serve  func(h *Handler) http.HandlerFunc
		status int
	}{
		{"not found", func(h *Handler) http.HandlerFunc { return h.NotFound }, http.StatusNotFound},
		{"method not allowed", func(h *Handler) http.HandlerFunc { return h.MethodNotAllowed }, http.StatusMethodNotAllowed},
	}

	h := NewHandler(testutil.Content(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
			rec := httptest.NewRecorder()

			// The status is written before the template renders.
			tt.serve(h)(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}
