// Package carousel holds the index arithmetic behind gallery cards and the
// fullscreen lightbox. Both are values, so a lightbox opened from a card
// owns its own index from then on.
package carousel

import "fmt"

// Carousel is a cyclic position over n images.
type Carousel struct {
	index int
	n     int
}

// New returns a carousel over n images positioned at the first one.
func New(n int) Carousel {
	if n < 0 {
		n = 0
	}
	return Carousel{n: n}
}

// At returns c positioned at i, wrapped into range. Request parameters go
// through here so a stale or hand-edited index cannot escape the slice.
func (c Carousel) At(i int) Carousel {
	if c.n == 0 {
		return c
	}
	c.index = ((i % c.n) + c.n) % c.n
	return c
}

// Index is the current position.
func (c Carousel) Index() int { return c.index }

// Len is the number of images.
func (c Carousel) Len() int { return c.n }

// Next advances by one, wrapping to the start.
func (c Carousel) Next() Carousel {
	if c.n == 0 {
		return c
	}
	c.index = (c.index + 1) % c.n
	return c
}

// Prev steps back by one, wrapping to the end.
func (c Carousel) Prev() Carousel {
	if c.n == 0 {
		return c
	}
	c.index = (c.index - 1 + c.n) % c.n
	return c
}

// Step moves by one in the named direction ("next" or "prev"); any other
// value leaves c unchanged.
func (c Carousel) Step(dir string) Carousel {
	switch dir {
	case "next":
		return c.Next()
	case "prev":
		return c.Prev()
	}
	return c
}

// ShowNav reports whether arrows, dots and the counter are drawn.
func (c Carousel) ShowNav() bool { return c.n > 1 }

// Counter is the "i / n" badge on a card.
func (c Carousel) Counter() string {
	return fmt.Sprintf("%d / %d", c.index+1, c.n)
}

// Lightbox is the fullscreen viewer.
type Lightbox struct {
	Carousel
	open bool
}

// Open starts a lightbox at the card's current image.
func Open(c Carousel) Lightbox {
	return Lightbox{Carousel: c, open: c.n > 0}
}

// IsOpen reports whether the lightbox is showing.
func (l Lightbox) IsOpen() bool { return l.open }

// Close hides the lightbox.
func (l Lightbox) Close() Lightbox {
	l.open = false
	return l
}

// Next advances the lightbox image.
func (l Lightbox) Next() Lightbox {
	l.Carousel = l.Carousel.Next()
	return l
}

// Prev steps the lightbox image back.
func (l Lightbox) Prev() Lightbox {
	l.Carousel = l.Carousel.Prev()
	return l
}

// Key applies a keyboard key while open. ArrowLeft and ArrowRight mirror
// Prev and Next, Escape closes; other keys are ignored.
func (l Lightbox) Key(key string) Lightbox {
	if !l.open {
		return l
	}
	switch key {
	case "ArrowLeft":
		return l.Prev()
	case "ArrowRight":
		return l.Next()
	case "Escape":
		return l.Close()
	}
	return l
}

// Counter is the "Image i / n" caption.
func (l Lightbox) Counter() string {
	return fmt.Sprintf("Image %d / %d", l.index+1, l.n)
}
