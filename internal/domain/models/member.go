// internal/domain/models/member.go
package models

import "html/template"

// MemberCategory is the closed set of roster groupings, stored as the human
// label (e.g. "Ph.D students"). Routing compares slugs, not labels.
type MemberCategory string

const (
	CategoryProfessor         MemberCategory = "Professor"
	CategoryResearchProfessor MemberCategory = "Research Professor"
	CategoryPostDoctors       MemberCategory = "Post doctors"
	CategoryPhDStudents       MemberCategory = "Ph.D students"
	CategoryMSStudents        MemberCategory = "M.S students"
	CategoryUndergraduates    MemberCategory = "Undergraduate students"
	CategoryAlumni            MemberCategory = "Alumni"
	CategoryStaff             MemberCategory = "Staff"
)

// MemberCategories is the sidebar order on the members pages.
var MemberCategories = []MemberCategory{
	CategoryProfessor,
	CategoryResearchProfessor,
	CategoryPostDoctors,
	CategoryPhDStudents,
	CategoryMSStudents,
	CategoryUndergraduates,
	CategoryAlumni,
	CategoryStaff,
}

// Member is one roster entry. Optional fields are empty strings when absent.
type Member struct {
	ID                 string         `yaml:"id" bson:"id" json:"id"`
	Name               string         `yaml:"name" bson:"name" json:"name"`
	NameEn             string         `yaml:"name_en,omitempty" bson:"name_en,omitempty" json:"name_en,omitempty"`
	Role               string         `yaml:"role" bson:"role" json:"role"`
	Category           MemberCategory `yaml:"category" bson:"category" json:"category"`
	Degree             string         `yaml:"degree,omitempty" bson:"degree,omitempty" json:"degree,omitempty"`
	Email              string         `yaml:"email,omitempty" bson:"email,omitempty" json:"email,omitempty"`
	Telephone          string         `yaml:"telephone,omitempty" bson:"telephone,omitempty" json:"telephone,omitempty"`
	ResearchArea       string         `yaml:"research_area,omitempty" bson:"research_area,omitempty" json:"research_area,omitempty"`
	CurrentInstitution string         `yaml:"current_institution,omitempty" bson:"current_institution,omitempty" json:"current_institution,omitempty"`
	Image              string         `yaml:"image,omitempty" bson:"image,omitempty" json:"image,omitempty"`
}

// HasImage reports whether the member has a portrait; the page falls back to
// an icon otherwise.
func (m Member) HasImage() bool { return m.Image != "" }

// ProfessorProfile is the long-form profile shown for the professor category.
type ProfessorProfile struct {
	Name       string           `yaml:"name" bson:"name" json:"name"`
	Image      string           `yaml:"image" bson:"image" json:"image"`
	ScholarURL string           `yaml:"scholar_url" bson:"scholar_url" json:"scholar_url"`
	Sections   []ProfileSection `yaml:"sections" bson:"sections" json:"sections"`
}

// ProfileSection is a titled list (Degree, Career, Award). Items are inline
// markdown; entries with a Period render as a timeline.
type ProfileSection struct {
	Title string        `yaml:"title" bson:"title" json:"title"`
	Items []ProfileItem `yaml:"items" bson:"items" json:"items"`
}

// ProfileItem is a single line of a profile section.
type ProfileItem struct {
	Period   string        `yaml:"period,omitempty" bson:"period,omitempty" json:"period,omitempty"`
	Text     string        `yaml:"text" bson:"text" json:"text"`
	TextHTML template.HTML `yaml:"-" bson:"-" json:"-"`
}
