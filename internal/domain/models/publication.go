// internal/domain/models/publication.go
package models

// PeriodKey identifies a coarse publication bucket. The value is the slug used
// in URLs and in the "publications-<period>" anchor fragment.
type PeriodKey string

const (
	PeriodPresent2021    PeriodKey = "present-2021"
	Period2020To2011     PeriodKey = "2020-2011"
	Period2010AndEarlier PeriodKey = "2010-and-earlier"
	PeriodBookChapters   PeriodKey = "book-chapters"
)

// PeriodKeys lists the buckets in display order.
var PeriodKeys = []PeriodKey{
	PeriodPresent2021,
	Period2020To2011,
	Period2010AndEarlier,
	PeriodBookChapters,
}

// Valid reports whether k is one of the fixed publication periods.
func (k PeriodKey) Valid() bool {
	for _, v := range PeriodKeys {
		if v == k {
			return true
		}
	}
	return false
}

// ScholarSearchBase is the fallback target for entries without a link.
const ScholarSearchBase = "https://scholar.google.com/scholar?q="

// PaperImagePlaceholder replaces publication images that fail to load.
const PaperImagePlaceholder = "https://via.placeholder.com/400x400?text=Paper+Image"

// PublicationPeriod is one archive page. Years are kept in authored order.
type PublicationPeriod struct {
	Key         PeriodKey         `yaml:"key" bson:"key" json:"key"`
	Title       string            `yaml:"title" bson:"title" json:"title"`
	Subtitle    string            `yaml:"subtitle" bson:"subtitle" json:"subtitle"`
	Label       string            `yaml:"label" bson:"label" json:"label"` // landing card label
	Description string            `yaml:"description,omitempty" bson:"description,omitempty" json:"description,omitempty"`
	Image       string            `yaml:"image,omitempty" bson:"image,omitempty" json:"image,omitempty"`
	Featured    bool              `yaml:"featured" bson:"featured" json:"featured"` // shown as a landing card
	HideLinks   bool              `yaml:"hide_links" bson:"hide_links" json:"hide_links"`
	Years       []PublicationYear `yaml:"years" bson:"years" json:"years"`
}

// Count returns the number of entries across all year sections.
func (p PublicationPeriod) Count() int {
	n := 0
	for _, y := range p.Years {
		n += len(y.Entries)
	}
	return n
}

// HasYearNav reports whether the period is split into labeled year sections.
func (p PublicationPeriod) HasYearNav() bool {
	for _, y := range p.Years {
		if y.Anchor != "" {
			return true
		}
	}
	return false
}

// PublicationYear is a year (or year range) section. Anchor becomes the
// "year-<anchor>" element id; an empty anchor means an unlabeled section.
type PublicationYear struct {
	Anchor  string             `yaml:"anchor,omitempty" bson:"anchor,omitempty" json:"anchor,omitempty"`
	Label   string             `yaml:"label,omitempty" bson:"label,omitempty" json:"label,omitempty"`
	Entries []PublicationEntry `yaml:"entries" bson:"entries" json:"entries"`
}

// PublicationEntry is a single citation. Num is a display label scoped to its
// year section and never a sort key.
type PublicationEntry struct {
	ID    string `yaml:"-" bson:"id" json:"id"`
	Num   int    `yaml:"num" bson:"num" json:"num"`
	Text  string `yaml:"text" bson:"text" json:"text"`
	Image string `yaml:"img" bson:"img" json:"img"`
	Link  string `yaml:"link,omitempty" bson:"link,omitempty" json:"link,omitempty"`
}

// PublicationStat is one counter in the landing statistics strip.
type PublicationStat struct {
	Label string `yaml:"label" bson:"label" json:"label"`
	Value int    `yaml:"value" bson:"value" json:"value"`
}
