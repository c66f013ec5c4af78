package board

import (
	"net/http"

	"github.com/fedl/labsite/internal/app/features/gallery"
	"github.com/fedl/labsite/internal/app/system/filter"
	"github.com/fedl/labsite/internal/app/system/navigation"
	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
)

var (
	noticeSlug  = normalize.Slug(string(models.BoardNotice))
	gallerySlug = normalize.Slug(string(models.BoardGallery))
)

func (h *Handler) buildData(r *http.Request, typ, q string) pageData {
	display := normalize.DisplayType(typ)
	view := viewrouter.BoardDetail{Type: typ}

	data := pageData{
		BaseVM:      viewdata.NewBaseVM(r, h.Content.Site(), viewrouter.KindBoard, display, "/"),
		Type:        typ,
		DisplayType: display,
		Query:       q,
		ShowBanner:  q != "",
		ClearURL:    view.Path(),
		ActionURL:   view.Path(),
		Sidebar:     sidebar(typ),
		IsGallery:   normalize.Slug(typ) == gallerySlug,
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.BoardBackURL)

	items := filter.TextSearch(filter.ByType(h.Content.Board(), typ), q)
	data.Count = len(items)

	if data.IsGallery {
		data.Cards = gallery.Cards(items)
	} else {
		data.Rows = rows(items)
	}

	if len(items) == 0 {
		switch {
		case normalize.IsBlank(q):
			data.Empty = EmptyType
		case data.IsGallery:
			data.Empty = EmptyGallery
		default:
			data.Empty = EmptySearch
		}
	}
	return data
}

func sidebar(current string) []typeLink {
	want := normalize.Slug(current)
	out := make([]typeLink, 0, len(models.BoardTypes))
	for _, t := range models.BoardTypes {
		v := viewrouter.BoardDetail{Type: normalize.Slug(string(t))}
		out = append(out, typeLink{
			Name:   string(t),
			Href:   "#" + v.Fragment(),
			Active: v.Type == want,
		})
	}
	return out
}

func rows(items []models.BoardItem) []row {
	out := make([]row, 0, len(items))
	for _, it := range items {
		notice := normalize.Slug(string(it.Type)) == noticeSlug
		rw := row{
			ID:          it.ID,
			Type:        string(it.Type),
			Date:        it.Date,
			Title:       it.Title,
			Source:      it.Source,
			ShowActions: !notice,
		}
		if !notice {
			if it.HasViews() {
				rw.Views = viewdata.FormatCount(*it.Views)
			}
			switch {
			case len(it.Links) > 0:
				rw.Links = it.Links
			case it.Link != "":
				rw.Links = []models.BoardLink{{Label: "Detail", URL: it.Link}}
			default:
				rw.NoDetail = true
			}
		}
		out = append(out, rw)
	}
	return out
}
