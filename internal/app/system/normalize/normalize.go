// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Slug lowercases s and turns every space into a hyphen. It is the partition
// key used to compare member categories and board types against URL and
// fragment slugs. Slug is idempotent.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// QueryParam trims surrounding whitespace from a query value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DisplayCategory turns a category slug back into a heading.
//
//	"ph.d-students"          -> "Ph.D Students"
//	"undergraduate-students" -> "Undergraduate Students"
func DisplayCategory(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		switch w {
		case "ph.d":
			words[i] = "Ph.D"
		case "m.s":
			words[i] = "M.S"
		default:
			words[i] = UpperFirst(w)
		}
	}
	return strings.Join(words, " ")
}

// DisplayType uppercases the first letter of a board type slug.
func DisplayType(slug string) string {
	return UpperFirst(slug)
}

// UpperFirst uppercases the first rune and leaves the rest untouched.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
