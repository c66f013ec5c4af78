package publications

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/domain/models"
)

type pageData struct {
	viewdata.BaseVM

	Key      string
	Found    bool
	Heading  string
	Subtitle string
	Total    int

	YearNav    []yearLink
	YearOffset int
	Years      []yearVM
}

type yearLink struct {
	Label  string
	Target string
}

type yearVM struct {
	ElementID string
	Label     string
	Entries   []entryVM
}

type entryVM struct {
	ID          string
	Num         int
	Text        string
	Image       string
	Alt         string
	Placeholder string
	// Href is empty when the period hides article links.
	Href string
}

// yearElementID is the element id a year nav button scrolls to.
func yearElementID(anchor string) string {
	return "year-" + anchor
}

func buildYearNav(p models.PublicationPeriod) []yearLink {
	out := make([]yearLink, 0, len(p.Years))
	for _, y := range p.Years {
		if y.Anchor == "" {
			continue
		}
		out = append(out, yearLink{Label: y.Label, Target: yearElementID(y.Anchor)})
	}
	return out
}

func buildYears(p models.PublicationPeriod) []yearVM {
	out := make([]yearVM, 0, len(p.Years))
	for _, y := range p.Years {
		yv := yearVM{Label: y.Label}
		if y.Anchor != "" {
			yv.ElementID = yearElementID(y.Anchor)
		}
		for _, e := range y.Entries {
			ev := entryVM{
				ID:          e.ID,
				Num:         e.Num,
				Text:        e.Text,
				Image:       e.Image,
				Alt:         fmt.Sprintf("Publication %d", e.Num),
				Placeholder: models.PaperImagePlaceholder,
			}
			if ev.Image == "" {
				ev.Image = models.PaperImagePlaceholder
			}
			if !p.HideLinks {
				ev.Href = ArticleURL(e)
			}
			yv.Entries = append(yv.Entries, ev)
		}
		out = append(out, yv)
	}
	return out
}

// ArticleURL is the entry's own link, or a Google Scholar search for its
// citation text when it has none.
func ArticleURL(e models.PublicationEntry) string {
	if e.Link != "" {
		return e.Link
	}
	return models.ScholarSearchBase + encodeComponent(e.Text)
}

// encodeComponent escapes s for use inside a query value, spelling spaces
// as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
