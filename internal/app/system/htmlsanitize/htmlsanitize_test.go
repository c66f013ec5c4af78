package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/fedl/labsite/internal/app/system/htmlsanitize"
)

func TestSanitize_Keeps(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain text", "Hello, World!"},
		{"formatting", "<p><strong>Bold</strong> and <em>italic</em></p>"},
		{"subscript", "<p>MoS<sub>2</sub></p>"},
		{"lists", "<ul><li>One</li><li>Two</li></ul>"},
		{"figure", "<figure><figcaption>CVD synthesis</figcaption></figure>"},
		{"code", "<pre><code>x := 1</code></pre>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.Sanitize(tt.input); got != tt.input {
				t.Errorf("Sanitize(%q) = %q, want unchanged", tt.input, got)
			}
		})
	}
}

func TestSanitize_Removes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		banned string
	}{
		{"script", `<p>Hi</p><script>alert(1)</script>`, "<script"},
		{"onclick", `<p onclick="alert(1)">Hi</p>`, "onclick"},
		{"javascript href", `<a href="javascript:alert(1)">x</a>`, "javascript:"},
		{"iframe", `<iframe src="https://example.com"></iframe>`, "<iframe"},
		{"style", `<style>p{color:red}</style><p>x</p>`, "<style"},
		{"onerror", `<img src="x.png" onerror="alert(1)">`, "onerror"},
		{"form", `<form><input name="q"></form>`, "<input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.input)
			if strings.Contains(got, tt.banned) {
				t.Errorf("Sanitize(%q) = %q, still contains %q", tt.input, got, tt.banned)
			}
		})
	}
}

func TestSanitize_ExternalLinksOpenInNewTab(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://scholar.google.com/">Scholar</a>`)
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("expected target=_blank on external link, got %q", got)
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := htmlsanitize.SanitizeToHTML(`<p>Safe</p><script>bad()</script>`)
	if got != template.HTML("<p>Safe</p>") {
		t.Errorf("SanitizeToHTML = %q", got)
	}
	if htmlsanitize.SanitizeToHTML("") != "" {
		t.Error("empty input should give empty output")
	}
}
