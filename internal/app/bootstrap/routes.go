// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	apifeature "github.com/fedl/labsite/internal/app/features/api"
	boardfeature "github.com/fedl/labsite/internal/app/features/board"
	contactfeature "github.com/fedl/labsite/internal/app/features/contact"
	errorsfeature "github.com/fedl/labsite/internal/app/features/errors"
	galleryfeature "github.com/fedl/labsite/internal/app/features/gallery"
	healthfeature "github.com/fedl/labsite/internal/app/features/health"
	homefeature "github.com/fedl/labsite/internal/app/features/home"
	membersfeature "github.com/fedl/labsite/internal/app/features/members"
	navigatefeature "github.com/fedl/labsite/internal/app/features/navigate"
	publicationsfeature "github.com/fedl/labsite/internal/app/features/publications"
	researchfeature "github.com/fedl/labsite/internal/app/features/research"
	statusfeature "github.com/fedl/labsite/internal/app/features/status"
	"github.com/fedl/labsite/internal/app/system/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, content loading, schema setup, and
// the Startup hook have completed. Every page reads from deps.Content, which
// is immutable for the life of the process.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Metrics get their own registry so a rebuilt handler (tests, reloads)
	// never collides with an earlier registration.
	var m *metrics.Metrics
	var reg *prometheus.Registry
	if appCfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		m = metrics.NewWithRegistry(reg, logger)
		recordContentCounts(m, deps)
	}

	r := chi.NewRouter()
	r.Use(m.Middleware)

	// Not-found and method handlers go on before any Mount so subrouters
	// inherit them.
	errorsHandler := errorsfeature.NewHandler(deps.Content)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Content, deps.ContentSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	if appCfg.StatusEnabled {
		statusHandler := statusfeature.NewHandler(deps.Content, deps.ContentSource, Version, statusGroups(coreCfg, appCfg), logger)
		r.Mount("/status", statusfeature.Routes(statusHandler))
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Views
	homeHandler := homefeature.NewHandler(deps.Content, m, appCfg.HeaderOffset, appCfg.PreviewCount, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	contactHandler := contactfeature.NewHandler(deps.Content, m, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	researchHandler := researchfeature.NewHandler(deps.Content, m, logger)
	r.Mount("/research", researchfeature.Routes(researchHandler))

	pubsHandler := publicationsfeature.NewHandler(deps.Content, m, appCfg.YearNavOffset, logger)
	r.Mount("/publications", publicationsfeature.Routes(pubsHandler))

	membersHandler := membersfeature.NewHandler(deps.Content, m, logger)
	r.Mount("/members", membersfeature.Routes(membersHandler))

	galleryHandler := galleryfeature.NewHandler(deps.Content, m, logger)
	boardHandler := boardfeature.NewHandler(deps.Content, m, logger)
	r.Mount("/board", boardfeature.Routes(boardHandler, galleryHandler))

	// JSON endpoints share a per-client limit.
	r.Group(func(r chi.Router) {
		r.Use(deps.Limiter.Middleware(logger))

		// In-page link resolution for the client script
		navHandler := navigatefeature.NewHandler(appCfg.HeaderOffset, m, logger)
		r.Mount("/go", navigatefeature.Routes(navHandler))

		// Read-only JSON
		apiHandler := apifeature.NewHandler(deps.Content, appCfg.BaseURL, appCfg.APIAllowedOrigins, logger)
		r.Mount("/api", apifeature.Routes(apiHandler))
	})

	return r, nil
}

func recordContentCounts(m *metrics.Metrics, deps DBDeps) {
	c := deps.Content.Counts()
	m.SetContentCount("research", c.Research)
	m.SetContentCount("periods", c.Periods)
	m.SetContentCount("publications", c.Publications)
	m.SetContentCount("members", c.Members)
	m.SetContentCount("notice", c.Notice)
	m.SetContentCount("news", c.News)
	m.SetContentCount("gallery", c.Gallery)
}

// statusGroups is the configuration shown at /status. Secrets in the Mongo
// URI are redacted.
func statusGroups(coreCfg *config.CoreConfig, appCfg AppConfig) []statusfeature.ConfigGroup {
	item := func(name, value string) statusfeature.ConfigItem {
		return statusfeature.ConfigItem{Name: name, Value: value}
	}
	return []statusfeature.ConfigGroup{
		{
			Name: "Content",
			Items: []statusfeature.ConfigItem{
				item("env", coreCfg.Env),
				item("content_source", appCfg.ContentSource),
				item("mongo_uri", statusfeature.RedactURI(appCfg.MongoURI)),
				item("mongo_database", appCfg.MongoDatabase),
			},
		},
		{
			Name: "Pages",
			Items: []statusfeature.ConfigItem{
				item("header_offset", strconv.Itoa(appCfg.HeaderOffset)),
				item("year_nav_offset", strconv.Itoa(appCfg.YearNavOffset)),
				item("scroll_settle", appCfg.ScrollSettle.String()),
				item("preview_count", strconv.Itoa(appCfg.PreviewCount)),
			},
		},
		{
			Name: "API",
			Items: []statusfeature.ConfigItem{
				item("api_allowed_origins", strings.Join(appCfg.APIAllowedOrigins, ",")),
				item("api_rate_limit", strconv.Itoa(appCfg.APIRateLimit)),
				item("metrics_enabled", strconv.FormatBool(appCfg.MetricsEnabled)),
				item("base_url", appCfg.BaseURL),
			},
		},
	}
}
