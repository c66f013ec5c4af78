// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/members").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject. They keep the back
	// button from pointing at fragment endpoints and HTMX partials.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string

	// PreserveQueryParam is an optional query parameter copied onto the
	// fallback URL (for example "q" on board pages).
	PreserveQueryParam string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// The "return" query parameter is checked first, then the form value. The URL
// must be local (no open redirect), match AllowedPrefix and avoid every
// excluded subpath. Otherwise the fallback is returned.
//
//	back := navigation.SafeBackURL(r, navigation.DetailBackURL)
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" {
		valid := isLocalPath(ret)

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	fallback := opts.Fallback
	if opts.PreserveQueryParam != "" {
		param := query.Get(r, opts.PreserveQueryParam)
		if param == "" {
			param = strings.TrimSpace(r.FormValue(opts.PreserveQueryParam))
		}
		if param != "" {
			sep := "?"
			if strings.Contains(fallback, "?") {
				sep = "&"
			}
			fallback += sep + opts.PreserveQueryParam + "=" + param
		}
	}

	return fallback
}

func isLocalPath(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//")
}

// nonPageSubpaths are endpoints that answer with JSON or partial HTML.
var nonPageSubpaths = []string{"/go/", "/api/", "/card", "/lightbox", "/health", "/metrics"}

// Back URL presets. Every detail view returns to the landing page.
var (
	// DetailBackURL is used by research, publication and member pages.
	DetailBackURL = BackURLOptions{
		AllowedPrefix:    "/",
		ExcludedSubpaths: nonPageSubpaths,
		Fallback:         "/",
	}

	// BoardBackURL is used by board pages.
	BoardBackURL = BackURLOptions{
		AllowedPrefix:    "/",
		ExcludedSubpaths: append([]string{"/board/"}, nonPageSubpaths...),
		Fallback:         "/",
	}
)
