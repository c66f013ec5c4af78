// internal/app/content/markdown.go
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/fedl/labsite/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is escaped by goldmark (no WithUnsafe) and the
// output still goes through the sanitizer.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts block markdown to sanitized HTML.
func RenderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return htmlsanitize.SanitizeToHTML(buf.String()), nil
}

// RenderInline renders a single line of markdown without the wrapping
// paragraph, for list items such as profile entries.
func RenderInline(src string) (template.HTML, error) {
	out, err := RenderMarkdown(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s), nil
}
