// Package metrics exposes Prometheus counters for page views, board
// searches, fragment resolution and the loaded content.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "labsite"

// Metrics holds all application metrics. A nil *Metrics is valid and records
// nothing, which keeps handlers usable with metrics_enabled=false.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Site
	PageViewsTotal     *prometheus.CounterVec
	SearchesTotal      *prometheus.CounterVec
	FragmentsTotal     *prometheus.CounterVec
	CarouselStepsTotal *prometheus.CounterVec
	ContentItems       *prometheus.GaugeVec

	logger *zap.Logger
}

// New registers with the default registry.
func New(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry registers all metrics with registerer.
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		PageViewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Rendered pages by view kind",
			},
			[]string{"view"},
		),
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "board_searches_total",
				Help:      "Board searches by type and outcome (hit or empty)",
			},
			[]string{"type", "outcome"},
		),
		FragmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fragment_resolutions_total",
				Help:      "Intercepted anchor links by resulting action",
			},
			[]string{"action"},
		),
		CarouselStepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "carousel_steps_total",
				Help:      "Gallery navigation requests by surface (card or lightbox)",
			},
			[]string{"surface"},
		),
		ContentItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "content_items",
				Help:      "Loaded content items by kind",
			},
			[]string{"kind"},
		),
		logger: logger,
	}
}

// safeExecute keeps a bad label set from taking down a request.
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r))
		}
	}()
	fn()
}

// RecordHTTPRequest records one finished request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	})
}

// RecordPageView counts a rendered page.
func (m *Metrics) RecordPageView(view string) {
	if m == nil {
		return
	}
	m.safeExecute("RecordPageView", func() {
		m.PageViewsTotal.WithLabelValues(view).Inc()
	})
}

// RecordSearch counts a non-blank board search.
func (m *Metrics) RecordSearch(boardType string, hits int) {
	if m == nil {
		return
	}
	outcome := "hit"
	if hits == 0 {
		outcome = "empty"
	}
	m.safeExecute("RecordSearch", func() {
		m.SearchesTotal.WithLabelValues(boardType, outcome).Inc()
	})
}

// RecordFragment counts a resolved anchor link.
func (m *Metrics) RecordFragment(action string) {
	if m == nil {
		return
	}
	m.safeExecute("RecordFragment", func() {
		m.FragmentsTotal.WithLabelValues(action).Inc()
	})
}

// RecordCarouselStep counts a gallery card or lightbox step.
func (m *Metrics) RecordCarouselStep(surface string) {
	if m == nil {
		return
	}
	m.safeExecute("RecordCarouselStep", func() {
		m.CarouselStepsTotal.WithLabelValues(surface).Inc()
	})
}

// SetContentCount publishes the number of loaded items of one kind.
func (m *Metrics) SetContentCount(kind string, n int) {
	if m == nil {
		return
	}
	m.safeExecute("SetContentCount", func() {
		m.ContentItems.WithLabelValues(kind).Set(float64(n))
	})
}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics.
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health" || strings.HasPrefix(path, "/static/")
}

// Middleware records request counts and latency keyed by the chi route
// pattern, so /members/alumni and /members/staff share one series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil || ShouldSkipEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RecordHTTPRequest(r.Method, route, status, time.Since(start))
	})
}
