// internal/app/content/validate.go
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/domain/models"
)

// ValidationError collects every problem found in a snapshot so that one run
// reports them all.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid content: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err (or anything it wraps) is a
// *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// Validate checks the load-time invariants of snap. A nil return means the
// snapshot can be turned into a Store.
func Validate(snap Snapshot) error {
	var p problems

	validateResearch(&p, snap.Research)
	validatePublications(&p, snap.Publications)
	validateMembers(&p, snap.Members)
	validateBoard(&p, snap.Board)
	validateProfile(&p, snap.Profile)

	if len(p) > 0 {
		return &ValidationError{Problems: p}
	}
	return nil
}

func validateResearch(p *problems, areas []models.ResearchArea) {
	if len(areas) != len(models.ResearchTopics) {
		p.addf("research: want %d areas, got %d", len(models.ResearchTopics), len(areas))
	}
	seenID := map[string]bool{}
	seenTopic := map[models.ResearchTopic]bool{}
	for i, a := range areas {
		where := fmt.Sprintf("research[%d]", i)
		if a.ID == "" {
			p.addf("%s: missing id", where)
		} else if seenID[a.ID] {
			p.addf("%s: duplicate id %q", where, a.ID)
		}
		seenID[a.ID] = true

		if !a.Topic.Valid() {
			p.addf("%s: unknown topic %q", where, a.Topic)
		} else if seenTopic[a.Topic] {
			p.addf("%s: duplicate topic %q", where, a.Topic)
		}
		seenTopic[a.Topic] = true

		if strings.TrimSpace(a.Title) == "" {
			p.addf("%s: missing title", where)
		} else if normalize.Slug(a.Title) != string(a.Topic) {
			// the landing anchor is derived from the title
			p.addf("%s: title %q does not slug to topic %q", where, a.Title, a.Topic)
		}
		for j, s := range a.Sections {
			if strings.TrimSpace(s.Title) == "" {
				p.addf("%s.sections[%d]: missing title", where, j)
			}
		}
	}
}

func validatePublications(p *problems, periods []models.PublicationPeriod) {
	seen := map[models.PeriodKey]bool{}
	for i, per := range periods {
		where := fmt.Sprintf("publications[%d]", i)
		if !per.Key.Valid() {
			p.addf("%s: unknown period %q", where, per.Key)
		} else if seen[per.Key] {
			p.addf("%s: duplicate period %q", where, per.Key)
		}
		seen[per.Key] = true

		anchors := map[string]bool{}
		for j, y := range per.Years {
			if y.Anchor != "" {
				if anchors[y.Anchor] {
					p.addf("%s.years[%d]: duplicate anchor %q", where, j, y.Anchor)
				}
				anchors[y.Anchor] = true
				if y.Label == "" {
					p.addf("%s.years[%d]: anchor %q has no label", where, j, y.Anchor)
				}
			}
			for k, e := range y.Entries {
				if strings.TrimSpace(e.Text) == "" {
					p.addf("%s.years[%d].entries[%d]: missing text", where, j, k)
				}
			}
		}
	}
	for _, k := range models.PeriodKeys {
		if !seen[k] {
			p.addf("publications: missing period %q", k)
		}
	}
}

func validateMembers(p *problems, members []models.Member) {
	valid := map[string]bool{}
	for _, c := range models.MemberCategories {
		valid[normalize.Slug(string(c))] = true
	}
	seen := map[string]bool{}
	for i, m := range members {
		where := fmt.Sprintf("members[%d]", i)
		if m.ID == "" {
			p.addf("%s: missing id", where)
		} else if seen[m.ID] {
			p.addf("%s: duplicate id %q", where, m.ID)
		}
		seen[m.ID] = true

		if strings.TrimSpace(m.Name) == "" {
			p.addf("%s: missing name", where)
		}
		if !valid[normalize.Slug(string(m.Category))] {
			p.addf("%s (%s): unknown category %q", where, m.Name, m.Category)
		}
	}
}

func validateBoard(p *problems, items []models.BoardItem) {
	seen := map[string]bool{}
	for i, b := range items {
		where := fmt.Sprintf("board[%d]", i)
		if b.ID == "" {
			p.addf("%s: missing id", where)
		} else if seen[b.ID] {
			p.addf("%s: duplicate id %q", where, b.ID)
		}
		seen[b.ID] = true

		switch b.Type {
		case models.BoardNotice, models.BoardNews, models.BoardGallery:
		default:
			p.addf("%s: unknown type %q", where, b.Type)
		}
		if strings.TrimSpace(b.Title) == "" {
			p.addf("%s: missing title", where)
		}
		for j, l := range b.Links {
			if l.Label == "" || l.URL == "" {
				p.addf("%s.links[%d]: label and url are required", where, j)
			}
		}
		if b.Views != nil && *b.Views < 0 {
			p.addf("%s: negative views", where)
		}
	}
}

func validateProfile(p *problems, prof models.ProfessorProfile) {
	for i, s := range prof.Sections {
		if strings.TrimSpace(s.Title) == "" {
			p.addf("profile.sections[%d]: missing title", i)
		}
	}
}
