// internal/app/system/viewrouter/paths.go
package viewrouter

import (
	"net/url"
	"strings"
)

// FromPath maps a site path (optionally with a query string) back to the
// view that renders it. ok is false for paths outside the view routes.
func FromPath(raw string) (View, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	p := strings.TrimSuffix(u.Path, "/")

	switch p {
	case "":
		return Main{}, true
	case "/contact":
		return Contact{}, true
	}

	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		return nil, false
	}
	arg := parts[1]

	switch parts[0] {
	case "research":
		return ResearchDetail{Topic: arg}, true
	case "publications":
		return PublicationDetail{Period: arg}, true
	case "members":
		return MemberDetail{Category: arg}, true
	case "board":
		if arg == "search" {
			return nil, false
		}
		return BoardDetail{Type: arg, Query: u.Query().Get("q")}, true
	}
	return nil, false
}
