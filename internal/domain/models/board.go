// internal/domain/models/board.go
package models

// BoardType partitions board items into three display pipelines.
type BoardType string

const (
	BoardNotice  BoardType = "Notice"
	BoardNews    BoardType = "News"
	BoardGallery BoardType = "Gallery"
)

// BoardTypes is the sidebar order on the board pages.
var BoardTypes = []BoardType{BoardNotice, BoardNews, BoardGallery}

// BoardItem is a notice, a news clipping, or a photo gallery post.
// Date is free text as authored (both YYYY-MM-DD and DD/MM/YYYY occur).
type BoardItem struct {
	ID     string      `yaml:"id" bson:"id" json:"id"`
	Title  string      `yaml:"title" bson:"title" json:"title"`
	Date   string      `yaml:"date" bson:"date" json:"date"`
	Type   BoardType   `yaml:"type" bson:"type" json:"type"`
	Image  string      `yaml:"image,omitempty" bson:"image,omitempty" json:"image,omitempty"`
	Images []string    `yaml:"images,omitempty" bson:"images,omitempty" json:"images,omitempty"`
	Source string      `yaml:"source,omitempty" bson:"source,omitempty" json:"source,omitempty"`
	Link   string      `yaml:"link,omitempty" bson:"link,omitempty" json:"link,omitempty"`
	Links  []BoardLink `yaml:"links,omitempty" bson:"links,omitempty" json:"links,omitempty"`
	Views  *int        `yaml:"views,omitempty" bson:"views,omitempty" json:"views,omitempty"`
}

// BoardLink is a labeled outbound link on a news item.
type BoardLink struct {
	Label string `yaml:"label" bson:"label" json:"label"`
	URL   string `yaml:"url" bson:"url" json:"url"`
}

// Gallery returns the ordered image sequence for a gallery card: the plural
// field when present, else the single image, else nil.
func (b BoardItem) Gallery() []string {
	if len(b.Images) > 0 {
		return b.Images
	}
	if b.Image != "" {
		return []string{b.Image}
	}
	return nil
}

// HasViews reports whether a view count was recorded.
func (b BoardItem) HasViews() bool { return b.Views != nil }
