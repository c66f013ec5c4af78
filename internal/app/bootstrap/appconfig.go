// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Content sources.
const (
	ContentEmbedded = "embedded" // YAML compiled into the binary
	ContentMongo    = "mongo"    // collections seeded by labsitectl
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig covers where the lab content comes from and the few knobs the
// pages and the client script need.
type AppConfig struct {
	// Content source
	ContentSource string // "embedded" or "mongo"
	MongoURI      string // MongoDB connection string, used in mongo mode
	MongoDatabase string // Database name within MongoDB

	// Page behavior
	HeaderOffset  int           // px subtracted from section scroll targets
	YearNavOffset int           // px offset for publication year jumps
	ScrollSettle  time.Duration // extra delay before a deferred section scroll
	PreviewCount  int           // rows per board preview on the landing page

	// JSON API
	APIAllowedOrigins []string // CORS origins for /api
	APIRateLimit      int      // requests per minute per client on /api and /go; 0 disables

	MetricsEnabled bool   // mount /metrics
	StatusEnabled  bool   // mount /status
	BaseURL        string // absolute links in API responses
}
