package board

import (
	"github.com/fedl/labsite/internal/app/features/gallery"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/domain/models"
)

// EmptyKind says which empty state, if any, the results pane shows.
type EmptyKind string

const (
	EmptyNone    EmptyKind = ""
	EmptySearch  EmptyKind = "search"  // the query matched nothing
	EmptyGallery EmptyKind = "gallery" // gallery grid, query matched nothing
	EmptyType    EmptyKind = "type"    // unknown type, no query
)

type typeLink struct {
	Name   string
	Href   string
	Active bool
}

type row struct {
	ID     string
	Type   string
	Date   string
	Title  string
	Source string
	Views  string

	// ShowActions is false for notices, which carry neither views nor links.
	ShowActions bool
	Links       []models.BoardLink
	// NoDetail draws the disabled "Detail" button.
	NoDetail bool
}

type pageData struct {
	viewdata.BaseVM

	Type        string
	DisplayType string
	Query       string
	ShowBanner  bool
	ClearURL    string
	ActionURL   string

	Sidebar []typeLink

	IsGallery bool
	Rows      []row
	Cards     []gallery.Card
	Count     int

	Empty EmptyKind
}
