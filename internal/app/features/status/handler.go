// internal/app/features/status/handler.go
package status

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ConfigItem is one effective configuration value.
type ConfigItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ConfigGroup is a titled set of configuration values.
type ConfigGroup struct {
	Name  string       `json:"name"`
	Items []ConfigItem `json:"items"`
}

// Handler reports how the running process is configured. It is mounted only
// when status_enabled is set.
type Handler struct {
	Content *content.Store
	Source  string
	Version string
	Groups  []ConfigGroup
	Started time.Time
	Log     *zap.Logger
}

// NewHandler constructs a status Handler. Started is taken as now.
func NewHandler(store *content.Store, source, version string, groups []ConfigGroup, logger *zap.Logger) *Handler {
	return &Handler{
		Content: store,
		Source:  source,
		Version: version,
		Groups:  groups,
		Started: time.Now(),
		Log:     logger,
	}
}

type statusResponse struct {
	Version       string         `json:"version"`
	Started       time.Time      `json:"started"`
	Uptime        string         `json:"uptime"`
	ContentSource string         `json:"content_source"`
	Content       content.Counts `json:"content"`
	Config        []ConfigGroup  `json:"config"`
}

// Serve handles GET /status.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Version:       h.Version,
		Started:       h.Started.UTC(),
		Uptime:        time.Since(h.Started).Round(time.Second).String(),
		ContentSource: h.Source,
	}
	resp.Config = make([]ConfigGroup, 0, len(h.Groups)+1)
	resp.Config = append(resp.Config, h.Groups...)
	resp.Config = append(resp.Config, timeoutGroup())
	if h.Content != nil {
		resp.Content = h.Content.Counts()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Warn("status encode failed", zap.Error(err))
	}
}

func timeoutGroup() ConfigGroup {
	c := timeouts.Current()
	return ConfigGroup{
		Name: "Timeouts",
		Items: []ConfigItem{
			{Name: "ping", Value: c.Ping.String()},
			{Name: "load", Value: c.Load.String()},
			{Name: "write", Value: c.Write.String()},
		},
	}
}

// RedactURI hides the password in a connection string. Unparseable values
// are replaced entirely.
func RedactURI(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "(invalid)"
	}
	return u.Redacted()
}
