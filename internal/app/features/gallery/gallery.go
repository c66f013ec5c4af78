// Package gallery renders gallery cards and the lightbox. Cards appear on the
// landing page and the gallery board; both step through images with HTMX.
package gallery

import (
	"fmt"
	"net/url"

	"github.com/fedl/labsite/internal/app/system/carousel"
	"github.com/fedl/labsite/internal/domain/models"
)

// Card is the view model for one gallery card at a given image.
type Card struct {
	ID      string
	Title   string
	Date    string
	Image   string
	Dots    []bool // true at the current index
	ShowNav bool
	Counter string

	PrevURL     string
	NextURL     string
	LightboxURL string
}

// Lightbox is the view model for the fullscreen viewer.
type Lightbox struct {
	ID      string
	Title   string
	Open    bool
	Image   string
	Alt     string
	ShowNav bool
	Counter string

	PrevURL  string
	NextURL  string
	CloseURL string
}

// NewCard builds the card for item positioned at image i. ok is false when
// the item has no images; such items render nothing.
func NewCard(item models.BoardItem, i int) (Card, bool) {
	images := item.Gallery()
	if len(images) == 0 {
		return Card{}, false
	}
	return cardAt(item, images, carousel.New(len(images)).At(i)), true
}

func cardAt(item models.BoardItem, images []string, c carousel.Carousel) Card {
	dots := make([]bool, c.Len())
	dots[c.Index()] = true

	base := basePath(item.ID)
	return Card{
		ID:          item.ID,
		Title:       item.Title,
		Date:        item.Date,
		Image:       images[c.Index()],
		Dots:        dots,
		ShowNav:     c.ShowNav(),
		Counter:     c.Counter(),
		PrevURL:     fmt.Sprintf("%s/card?i=%d&dir=prev", base, c.Index()),
		NextURL:     fmt.Sprintf("%s/card?i=%d&dir=next", base, c.Index()),
		LightboxURL: fmt.Sprintf("%s/lightbox?i=%d", base, c.Index()),
	}
}

// Cards builds cards for every item that has images, in order.
func Cards(items []models.BoardItem) []Card {
	out := make([]Card, 0, len(items))
	for _, it := range items {
		if c, ok := NewCard(it, 0); ok {
			out = append(out, c)
		}
	}
	return out
}

// Step returns the card after moving from image i in direction dir.
func Step(item models.BoardItem, i int, dir string) (Card, bool) {
	images := item.Gallery()
	if len(images) == 0 {
		return Card{}, false
	}
	c := carousel.New(len(images)).At(i).Step(dir)
	return cardAt(item, images, c), true
}

// OpenLightbox opens the viewer at image i and applies key, if any.
func OpenLightbox(item models.BoardItem, i int, key string) (Lightbox, bool) {
	images := item.Gallery()
	if len(images) == 0 {
		return Lightbox{}, false
	}
	lb := carousel.Open(carousel.New(len(images)).At(i))
	if key != "" {
		lb = lb.Key(key)
	}

	base := basePath(item.ID)
	return Lightbox{
		ID:       item.ID,
		Title:    item.Title,
		Open:     lb.IsOpen(),
		Image:    images[lb.Index()],
		Alt:      fmt.Sprintf("%s - %d", item.Title, lb.Index()+1),
		ShowNav:  lb.ShowNav(),
		Counter:  lb.Counter(),
		PrevURL:  fmt.Sprintf("%s/lightbox?i=%d&key=ArrowLeft", base, lb.Index()),
		NextURL:  fmt.Sprintf("%s/lightbox?i=%d&key=ArrowRight", base, lb.Index()),
		CloseURL: fmt.Sprintf("%s/lightbox?i=%d&key=Escape", base, lb.Index()),
	}, true
}

func basePath(id string) string {
	return "/board/gallery/" + url.PathEscape(id)
}
