// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/fedl/labsite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the lab site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: content_source, mongo_uri, etc.
//   - Environment variables: LABSITE_CONTENT_SOURCE, LABSITE_MONGO_URI, etc.
//   - Command-line flags: --content_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "content_source", Default: ContentEmbedded, Desc: "Where lab content is read from: 'embedded' or 'mongo'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo content source)"},
	{Name: "mongo_database", Default: "fedl", Desc: "MongoDB database name"},

	// Page behavior
	{Name: "header_offset", Default: 80, Desc: "Pixels subtracted from section scroll targets (fixed header height)"},
	{Name: "year_nav_offset", Default: 120, Desc: "Pixel offset for publication year jumps"},
	{Name: "scroll_settle", Default: "0s", Desc: "Extra delay before a deferred section scroll (e.g., 150ms)"},
	{Name: "preview_count", Default: 3, Desc: "Rows shown in each landing board preview"},

	// JSON API
	{Name: "api_allowed_origins", Default: "*", Desc: "Comma-separated CORS origins for /api"},
	{Name: "api_rate_limit", Default: 120, Desc: "Requests per minute per client on /api and /go (0 disables)"},

	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "status_enabled", Default: false, Desc: "Expose the configuration report at /status"},
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Public base URL for absolute links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, LABSITE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LABSITE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ContentSource: strings.ToLower(strings.TrimSpace(appValues.String("content_source"))),
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		HeaderOffset:  appValues.Int("header_offset"),
		YearNavOffset: appValues.Int("year_nav_offset"),
		ScrollSettle:  appValues.Duration("scroll_settle", 0),
		PreviewCount:  appValues.Int("preview_count"),

		APIAllowedOrigins: splitList(appValues.String("api_allowed_origins")),
		APIRateLimit:      appValues.Int("api_rate_limit"),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
		StatusEnabled:  appValues.Bool("status_enabled"),
		BaseURL:        appValues.String("base_url"),
	}

	// Timeouts are read before ConnectDB so the content load uses them.
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n),
			zap.Duration("ping", timeouts.Ping()), zap.Duration("load", timeouts.Load()))
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The Mongo URI is only checked when content comes from Mongo.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.ContentSource {
	case ContentEmbedded:
	case ContentMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required when content_source is %q", ContentMongo)
		}
	default:
		return fmt.Errorf("content_source must be %q or %q, got %q", ContentEmbedded, ContentMongo, appCfg.ContentSource)
	}

	if appCfg.HeaderOffset < 0 || appCfg.YearNavOffset < 0 {
		return fmt.Errorf("header_offset and year_nav_offset must not be negative")
	}
	if appCfg.ScrollSettle < 0 || appCfg.ScrollSettle > 5*time.Second {
		return fmt.Errorf("scroll_settle must be between 0s and 5s, got %s", appCfg.ScrollSettle)
	}
	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must not be negative, got %d", appCfg.APIRateLimit)
	}
	if appCfg.PreviewCount <= 0 {
		return fmt.Errorf("preview_count must be positive, got %d", appCfg.PreviewCount)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
