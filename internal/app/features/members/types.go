package members

import (
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/domain/models"
)

// Layout selects how a category is drawn.
type Layout string

const (
	LayoutProfile Layout = "profile" // professor: long-form profile
	LayoutCompact Layout = "compact" // alumni: name, degree, current institution
	LayoutGrid    Layout = "grid"
	LayoutEmpty   Layout = "empty"
)

const (
	undergradEmptyCopy = "If you are interested in joining our lab as an intern or graduate student, please check the Contact section."
	defaultEmptyCopy   = "This section is currently being updated with our latest lab members' profiles. Please check back soon."
)

type categoryLink struct {
	Name   string
	Href   string
	Active bool
}

type pageData struct {
	viewdata.BaseVM

	Slug    string
	Heading string
	Layout  Layout

	Sidebar []categoryLink

	Profile models.ProfessorProfile
	Members []models.Member

	EmptyCopy string
}
