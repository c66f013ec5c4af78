// Package filter narrows content lists for the detail pages. Every function
// keeps the input order and never sorts; an empty result is not an error.
package filter

import (
	"strings"

	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/domain/models"
)

// ByCategory keeps the members whose category slug equals slug. Both sides
// are normalized, so "Ph.D students" and "ph.d-students" match.
func ByCategory(members []models.Member, slug string) []models.Member {
	want := normalize.Slug(slug)
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if normalize.Slug(string(m.Category)) == want {
			out = append(out, m)
		}
	}
	return out
}

// ByType keeps the board items of the given type.
func ByType(items []models.BoardItem, typ string) []models.BoardItem {
	want := normalize.Slug(typ)
	out := make([]models.BoardItem, 0, len(items))
	for _, it := range items {
		if normalize.Slug(string(it.Type)) == want {
			out = append(out, it)
		}
	}
	return out
}

// TextSearch keeps the items whose title or source contains raw, ignoring
// case. A blank query returns items unchanged.
//
// Blankness is decided on the trimmed query but matching uses the query as
// typed, so " award" only matches text with a space before "award".
func TextSearch(items []models.BoardItem, raw string) []models.BoardItem {
	if normalize.IsBlank(raw) {
		return items
	}
	q := strings.ToLower(raw)
	out := make([]models.BoardItem, 0, len(items))
	for _, it := range items {
		if Matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether the lowercased query q occurs in the item's title
// or source.
func Matches(it models.BoardItem, q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	return it.Source != "" && strings.Contains(strings.ToLower(it.Source), q)
}

// TopN returns at most the first n items. It backs the landing previews.
func TopN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
