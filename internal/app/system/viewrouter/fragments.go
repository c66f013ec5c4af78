// internal/app/system/viewrouter/fragments.go
package viewrouter

import (
	"strings"

	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/domain/models"
)

const (
	membersPrefix = "members-"
	boardPrefix   = "board-"
)

// Resolve maps an anchor fragment (without '#') to the view it opens. ok is
// false for fragments that name a section on the landing page instead, such
// as "research", "publications" or anything unrecognized.
func Resolve(fragment string) (View, bool) {
	switch fragment {
	case "":
		return Main{}, true
	case "contact":
		return Contact{}, true
	}

	if topic, ok := strings.CutPrefix(fragment, "research-"); ok && models.ResearchTopic(topic).Valid() {
		return ResearchDetail{Topic: topic}, true
	}
	if period, ok := strings.CutPrefix(fragment, "publications-"); ok && models.PeriodKey(period).Valid() {
		return PublicationDetail{Period: period}, true
	}
	if cat, ok := strings.CutPrefix(fragment, membersPrefix); ok {
		return MemberDetail{Category: cat}, true
	}
	if typ, ok := strings.CutPrefix(fragment, boardPrefix); ok {
		return BoardDetail{Type: typ}, true
	}
	return nil, false
}

// FragmentEntry is one row of the published fragment table.
type FragmentEntry struct {
	Fragment string `json:"fragment"`
	Kind     Kind   `json:"kind,omitempty"`
	Path     string `json:"path,omitempty"`
	Section  bool   `json:"section,omitempty"`
}

// Sections are the landing-page anchors that scroll instead of navigate.
var Sections = []string{"research", "publications", "members", "board"}

// Fragments lists the known vocabulary: every view fragment followed by the
// landing sections.
func Fragments() []FragmentEntry {
	views := []View{Main{}, Contact{}}
	for _, t := range models.ResearchTopics {
		views = append(views, ResearchDetail{Topic: string(t)})
	}
	for _, k := range models.PeriodKeys {
		views = append(views, PublicationDetail{Period: string(k)})
	}
	for _, c := range models.MemberCategories {
		views = append(views, MemberDetail{Category: normalize.Slug(string(c))})
	}
	for _, t := range models.BoardTypes {
		views = append(views, BoardDetail{Type: normalize.Slug(string(t))})
	}

	out := make([]FragmentEntry, 0, len(views)+len(Sections))
	for _, v := range views {
		out = append(out, FragmentEntry{Fragment: v.Fragment(), Kind: v.Kind(), Path: v.Path()})
	}
	for _, s := range Sections {
		out = append(out, FragmentEntry{Fragment: s, Section: true})
	}
	return out
}
