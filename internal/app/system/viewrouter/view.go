// Package viewrouter models which page of the site is showing and how anchor
// links move between pages. The state is a closed set of views; every
// transition resets the scroll to the top, and section scrolls that cross a
// page change wait for the next render to complete.
package viewrouter

import (
	"net/url"

	"github.com/fedl/labsite/internal/app/system/normalize"
)

// Kind names a view variant.
type Kind string

const (
	KindMain         Kind = "main"
	KindContact      Kind = "contact"
	KindResearch     Kind = "research"
	KindPublications Kind = "publications"
	KindMembers      Kind = "members"
	KindBoard        Kind = "board"
)

// View is one of Main, Contact, ResearchDetail, PublicationDetail,
// MemberDetail or BoardDetail. The set is closed.
type View interface {
	Kind() Kind
	// Path is the server route that renders the view.
	Path() string
	// Fragment is the anchor (without '#') that navigates to the view.
	Fragment() string

	isView()
}

// Main is the single-page landing view.
type Main struct{}

// Contact is the contact page.
type Contact struct{}

// ResearchDetail shows one research pillar.
type ResearchDetail struct {
	Topic string
}

// PublicationDetail shows one publication period.
type PublicationDetail struct {
	Period string
}

// MemberDetail shows one roster category. Category is kept verbatim so an
// unknown slug still reaches the page and renders an empty state.
type MemberDetail struct {
	Category string
}

// BoardDetail shows one board type, optionally filtered by a search query.
type BoardDetail struct {
	Type  string
	Query string
}

func (Main) Kind() Kind              { return KindMain }
func (Contact) Kind() Kind           { return KindContact }
func (ResearchDetail) Kind() Kind    { return KindResearch }
func (PublicationDetail) Kind() Kind { return KindPublications }
func (MemberDetail) Kind() Kind      { return KindMembers }
func (BoardDetail) Kind() Kind       { return KindBoard }

func (Main) isView()              {}
func (Contact) isView()           {}
func (ResearchDetail) isView()    {}
func (PublicationDetail) isView() {}
func (MemberDetail) isView()      {}
func (BoardDetail) isView()       {}

func (Main) Path() string    { return "/" }
func (Contact) Path() string { return "/contact" }

func (v ResearchDetail) Path() string {
	return "/research/" + url.PathEscape(v.Topic)
}

func (v PublicationDetail) Path() string {
	return "/publications/" + url.PathEscape(v.Period)
}

func (v MemberDetail) Path() string {
	return "/members/" + url.PathEscape(v.Category)
}

func (v BoardDetail) Path() string {
	p := "/board/" + url.PathEscape(v.Type)
	if !normalize.IsBlank(v.Query) {
		p += "?" + url.Values{"q": {v.Query}}.Encode()
	}
	return p
}

func (Main) Fragment() string                { return "" }
func (Contact) Fragment() string             { return "contact" }
func (v ResearchDetail) Fragment() string    { return "research-" + v.Topic }
func (v PublicationDetail) Fragment() string { return "publications-" + v.Period }
func (v MemberDetail) Fragment() string      { return "members-" + v.Category }
func (v BoardDetail) Fragment() string       { return "board-" + v.Type }

// WithQuery attaches q to v when v is a BoardDetail. Other views carry no
// query and are returned unchanged.
func WithQuery(v View, q string) View {
	if b, ok := v.(BoardDetail); ok {
		b.Query = q
		return b
	}
	return v
}
