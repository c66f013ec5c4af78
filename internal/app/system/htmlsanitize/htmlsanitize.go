// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once and shared. bluemonday policies are safe for
// concurrent use after construction.
var policy = newPolicy()

// newPolicy is the UGC policy plus the few elements research write-ups use
// for figures and inline formatting.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark", "figure", "figcaption")
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th", "p", "span", "figure", "figcaption")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips everything outside the content policy from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
