package health

import (
	"encoding/json"
	"net/http"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client  *mongo.Client // nil when content is embedded
	Content *content.Store
	Source  string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(client *mongo.Client, store *content.Store, source string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Content: store,
		Source:  source,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status        string          `json:"status"`
	ContentSource string          `json:"content_source"`
	Database      string          `json:"database"`
	Content       *content.Counts `json:"content,omitempty"`
	Message       string          `json:"message,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "content_source":"embedded", "database":"unused", "content":{...} }
//
// On DB failure (mongo source only): 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:        "ok",
		ContentSource: h.Source,
		Database:      "unused",
	}
	if h.Content != nil {
		c := h.Content.Counts()
		resp.Content = &c
	}

	if h.Client != nil {
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "health ping")
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
