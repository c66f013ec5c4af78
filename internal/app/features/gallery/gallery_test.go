package gallery

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fedl/labsite/internal/domain/models"
	"github.com/fedl/labsite/internal/testutil"
	"go.uber.org/zap"
)

func galleryItem(images ...string) models.BoardItem {
	return models.BoardItem{ID: "g1", Title: "Workshop", Date: "2023-08-29", Type: models.BoardGallery, Images: images}
}

func TestNewCard_NoImages(t *testing.T) {
	if _, ok := NewCard(galleryItem(), 0); ok {
		t.Error("expected no card for an item without images")
	}
}

func TestNewCard_SingleImageFallback(t *testing.T) {
	it := models.BoardItem{ID: "g9", Title: "One", Type: models.BoardGallery, Image: "a.jpg"}
	c, ok := NewCard(it, 0)
	if !ok {
		t.Fatal("expected card")
	}
	if c.Image != "a.jpg" {
		t.Errorf("Image = %q, want a.jpg", c.Image)
	}
	if c.ShowNav {
		t.Error("single image card should hide navigation")
	}
}

func TestStep(t *testing.T) {
	it := galleryItem("a", "b", "c")

	tests := []struct {
		name    string
		i       int
		dir     string
		image   string
		counter string
	}{
		{"next from first", 0, "next", "b", "2 / 3"},
		{"next wraps", 2, "next", "a", "1 / 3"},
		{"prev wraps", 0, "prev", "c", "3 / 3"},
		{"unknown dir stays", 1, "sideways", "b", "2 / 3"},
		{"out of range index wraps", 7, "", "b", "2 / 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Step(it, tt.i, tt.dir)
			if !ok {
				t.Fatal("expected card")
			}
			if c.Image != tt.image {
				t.Errorf("Image = %q, want %q", c.Image, tt.image)
			}
			if c.Counter != tt.counter {
				t.Errorf("Counter = %q, want %q", c.Counter, tt.counter)
			}
			if !c.ShowNav {
				t.Error("expected navigation for three images")
			}
		})
	}
}

func TestCard_DotsAndURLs(t *testing.T) {
	c, _ := Step(galleryItem("a", "b", "c"), 0, "next")

	active := 0
	for i, d := range c.Dots {
		if d {
			active++
			if i != 1 {
				t.Errorf("active dot at %d, want 1", i)
			}
		}
	}
	if active != 1 {
		t.Errorf("active dots = %d, want 1", active)
	}
	if c.NextURL != "/board/gallery/g1/card?i=1&dir=next" {
		t.Errorf("NextURL = %q", c.NextURL)
	}
	if c.LightboxURL != "/board/gallery/g1/lightbox?i=1" {
		t.Errorf("LightboxURL = %q", c.LightboxURL)
	}
}

func TestCards_SkipsEmpty(t *testing.T) {
	items := []models.BoardItem{
		galleryItem("a"),
		{ID: "g2", Type: models.BoardGallery},
		{ID: "g3", Type: models.BoardGallery, Image: "x"},
	}
	cards := Cards(items)
	if len(cards) != 2 {
		t.Fatalf("len = %d, want 2", len(cards))
	}
	if cards[1].ID != "g3" {
		t.Errorf("second card = %q, want g3", cards[1].ID)
	}
}

func TestOpenLightbox(t *testing.T) {
	it := galleryItem("a", "b", "c")

	tests := []struct {
		name    string
		i       int
		key     string
		open    bool
		image   string
		counter string
	}{
		{"open at card index", 1, "", true, "b", "Image 2 / 3"},
		{"arrow right", 2, "ArrowRight", true, "a", "Image 1 / 3"},
		{"arrow left", 0, "ArrowLeft", true, "c", "Image 3 / 3"},
		{"escape closes", 1, "Escape", false, "b", "Image 2 / 3"},
		{"other key ignored", 1, "Enter", true, "b", "Image 2 / 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb, ok := OpenLightbox(it, tt.i, tt.key)
			if !ok {
				t.Fatal("expected lightbox")
			}
			if lb.Open != tt.open {
				t.Errorf("Open = %v, want %v", lb.Open, tt.open)
			}
			if lb.Image != tt.image {
				t.Errorf("Image = %q, want %q", lb.Image, tt.image)
			}
			if lb.Counter != tt.counter {
				t.Errorf("Counter = %q, want %q", lb.Counter, tt.counter)
			}
		})
	}
}

func TestOpenLightbox_Alt(t *testing.T) {
	lb, _ := OpenLightbox(galleryItem("a", "b"), 1, "")
	if lb.Alt != "Workshop - 2" {
		t.Errorf("Alt = %q, want %q", lb.Alt, "Workshop - 2")
	}
	if !strings.Contains(lb.CloseURL, "key=Escape") {
		t.Errorf("CloseURL = %q", lb.CloseURL)
	}
}

func TestServePartials_NothingToShow(t *testing.T) {
	h := NewHandler(testutil.Content(t), nil, zap.NewNop())

	tests := []struct {
		name string
		id   string
	}{
		{"unknown id", "nope"},
		{"notice is not a gallery", "n48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, part := range []string{"card", "lightbox"} {
				req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/board/gallery/"+tt.id+"/"+part), "id", tt.id)
				rec := testutil.NewRecorder()
				if part == "card" {
					h.ServeCard(rec, req)
				} else {
					h.ServeLightbox(rec, req)
				}
				rec.AssertStatus(t, http.StatusOK)
				if rec.Body.Len() != 0 {
					t.Errorf("%s: expected an empty fragment, got %q", part, rec.Body.String())
				}
				if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
					t.Errorf("%s: content type = %q", part, ct)
				}
			}
		})
	}
}
