package members

import (
	"net/http"

	"github.com/fedl/labsite/internal/app/system/filter"
	"github.com/fedl/labsite/internal/app/system/navigation"
	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
)

var (
	professorSlug = normalize.Slug(string(models.CategoryProfessor))
	alumniSlug    = normalize.Slug(string(models.CategoryAlumni))
	undergradSlug = normalize.Slug(string(models.CategoryUndergraduates))
)

func (h *Handler) buildData(r *http.Request, slug string) pageData {
	heading := normalize.DisplayCategory(slug)

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Content.Site(), viewrouter.KindMembers, heading, "/"),
		Slug:    slug,
		Heading: heading,
		Sidebar: sidebar(slug),
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.DetailBackURL)

	want := normalize.Slug(slug)
	if want == professorSlug {
		data.Layout = LayoutProfile
		data.Profile = h.Content.Profile()
		return data
	}

	data.Members = filter.ByCategory(h.Content.Members(), slug)
	switch {
	case len(data.Members) == 0:
		data.Layout = LayoutEmpty
		data.EmptyCopy = emptyCopy(want)
	case want == alumniSlug:
		data.Layout = LayoutCompact
	default:
		data.Layout = LayoutGrid
	}
	return data
}

func sidebar(current string) []categoryLink {
	want := normalize.Slug(current)
	out := make([]categoryLink, 0, len(models.MemberCategories))
	for _, c := range models.MemberCategories {
		v := viewrouter.MemberDetail{Category: normalize.Slug(string(c))}
		out = append(out, categoryLink{
			Name:   normalize.DisplayCategory(v.Category),
			Href:   "#" + v.Fragment(),
			Active: v.Category == want,
		})
	}
	return out
}

func emptyCopy(slug string) string {
	if slug == undergradSlug {
		return undergradEmptyCopy
	}
	return defaultEmptyCopy
}
