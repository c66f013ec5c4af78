// internal/app/content/store.go
package content

import (
	"fmt"
	"strconv"

	"github.com/fedl/labsite/internal/app/system/normalize"
	"github.com/fedl/labsite/internal/domain/models"
	"github.com/google/uuid"
)

// publicationNS namespaces the derived publication entry IDs. The IDs are
// stable across restarts as long as period, section and text do not change.
var publicationNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fedl.yonsei.ac.kr/publications"))

// Store is the validated, read-only content for the lifetime of the process.
// Accessors hand out copies so callers cannot reach the shared state.
type Store struct {
	site         models.SiteSettings
	profile      models.ProfessorProfile
	research     []models.ResearchArea
	publications []models.PublicationPeriod
	members      []models.Member
	board        []models.BoardItem
	raw          Snapshot
}

// Counts summarizes the store for startup logs and gauges.
type Counts struct {
	Research     int `json:"research"`
	Periods      int `json:"periods"`
	Publications int `json:"publications"`
	Members      int `json:"members"`
	Notice       int `json:"notice"`
	News         int `json:"news"`
	Gallery      int `json:"gallery"`
}

// New validates snap and builds a Store from a private copy of it.
func New(snap Snapshot) (*Store, error) {
	if err := Validate(snap); err != nil {
		return nil, err
	}

	s := &Store{
		site:         snap.Site,
		profile:      cloneProfile(snap.Profile),
		research:     cloneResearch(snap.Research),
		publications: clonePeriods(snap.Publications),
		members:      append([]models.Member(nil), snap.Members...),
		board:        cloneBoard(snap.Board),
	}
	s.site.Stats = append([]models.PublicationStat(nil), snap.Site.Stats...)
	if s.site.SiteName == "" {
		s.site.SiteName = models.DefaultSiteName
	}

	if err := s.render(); err != nil {
		return nil, err
	}
	s.assignIDs()
	s.raw = s.snapshotCopy()
	return s, nil
}

// LoadDefault builds a Store from the embedded content.
func LoadDefault() (*Store, error) {
	snap, err := LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded content: %w", err)
	}
	return New(snap)
}

func (s *Store) render() error {
	for i := range s.research {
		for j := range s.research[i].Sections {
			sec := &s.research[i].Sections[j]
			h, err := RenderMarkdown(sec.Body)
			if err != nil {
				return fmt.Errorf("research %s section %d: %w", s.research[i].Topic, j, err)
			}
			sec.BodyHTML = h
		}
	}
	for i := range s.profile.Sections {
		for j := range s.profile.Sections[i].Items {
			it := &s.profile.Sections[i].Items[j]
			h, err := RenderInline(it.Text)
			if err != nil {
				return fmt.Errorf("profile %s item %d: %w", s.profile.Sections[i].Title, j, err)
			}
			it.TextHTML = h
		}
	}
	return nil
}

func (s *Store) assignIDs() {
	for i := range s.publications {
		p := &s.publications[i]
		for j := range p.Years {
			y := &p.Years[j]
			for k := range y.Entries {
				e := &y.Entries[k]
				name := string(p.Key) + "/" + y.Anchor + "/" + strconv.Itoa(k) + "/" + e.Text
				e.ID = uuid.NewSHA1(publicationNS, []byte(name)).String()
			}
		}
	}
}

// Site returns the lab-wide settings.
func (s *Store) Site() models.SiteSettings {
	out := s.site
	out.Stats = append([]models.PublicationStat(nil), s.site.Stats...)
	return out
}

// Profile returns the professor profile with rendered item HTML.
func (s *Store) Profile() models.ProfessorProfile { return cloneProfile(s.profile) }

// Research returns the research areas in display order.
func (s *Store) Research() []models.ResearchArea { return cloneResearch(s.research) }

// ResearchArea looks up a research area by topic slug.
func (s *Store) ResearchArea(topic string) (models.ResearchArea, bool) {
	for _, a := range s.research {
		if string(a.Topic) == topic {
			return cloneResearch([]models.ResearchArea{a})[0], true
		}
	}
	return models.ResearchArea{}, false
}

// Publications returns every period in display order.
func (s *Store) Publications() []models.PublicationPeriod { return clonePeriods(s.publications) }

// Period looks up a publication period by key.
func (s *Store) Period(key string) (models.PublicationPeriod, bool) {
	for _, p := range s.publications {
		if string(p.Key) == key {
			return clonePeriods([]models.PublicationPeriod{p})[0], true
		}
	}
	return models.PublicationPeriod{}, false
}

// Members returns the full roster in authored order.
func (s *Store) Members() []models.Member {
	return append([]models.Member(nil), s.members...)
}

// Professor returns the first member in the professor category.
func (s *Store) Professor() (models.Member, bool) {
	for _, m := range s.members {
		if normalize.Slug(string(m.Category)) == normalize.Slug(string(models.CategoryProfessor)) {
			return m, true
		}
	}
	return models.Member{}, false
}

// Board returns every board item in authored order.
func (s *Store) Board() []models.BoardItem { return cloneBoard(s.board) }

// BoardItem looks up a board item by id.
func (s *Store) BoardItem(id string) (models.BoardItem, bool) {
	for _, b := range s.board {
		if b.ID == id {
			return cloneBoard([]models.BoardItem{b})[0], true
		}
	}
	return models.BoardItem{}, false
}

// Snapshot returns the authored content, suitable for export or seeding.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Site:         s.Site(),
		Profile:      cloneProfile(s.raw.Profile),
		Research:     cloneResearch(s.raw.Research),
		Publications: clonePeriods(s.raw.Publications),
		Members:      s.Members(),
		Board:        s.Board(),
	}
}

// Counts reports how much content is loaded.
func (s *Store) Counts() Counts {
	c := Counts{
		Research: len(s.research),
		Periods:  len(s.publications),
		Members:  len(s.members),
	}
	for _, p := range s.publications {
		c.Publications += p.Count()
	}
	for _, b := range s.board {
		switch b.Type {
		case models.BoardNotice:
			c.Notice++
		case models.BoardNews:
			c.News++
		case models.BoardGallery:
			c.Gallery++
		}
	}
	return c
}

func (s *Store) snapshotCopy() Snapshot {
	snap := Snapshot{
		Site:         s.site,
		Profile:      cloneProfile(s.profile),
		Research:     cloneResearch(s.research),
		Publications: clonePeriods(s.publications),
		Members:      s.Members(),
		Board:        s.Board(),
	}
	// rendered HTML is derived; keep only the authored fields
	for i := range snap.Research {
		for j := range snap.Research[i].Sections {
			snap.Research[i].Sections[j].BodyHTML = ""
		}
	}
	for i := range snap.Profile.Sections {
		for j := range snap.Profile.Sections[i].Items {
			snap.Profile.Sections[i].Items[j].TextHTML = ""
		}
	}
	return snap
}

func cloneProfile(p models.ProfessorProfile) models.ProfessorProfile {
	out := p
	out.Sections = make([]models.ProfileSection, len(p.Sections))
	for i, sec := range p.Sections {
		out.Sections[i] = sec
		out.Sections[i].Items = append([]models.ProfileItem(nil), sec.Items...)
	}
	return out
}

func cloneResearch(in []models.ResearchArea) []models.ResearchArea {
	out := make([]models.ResearchArea, len(in))
	for i, a := range in {
		out[i] = a
		out[i].Sections = append([]models.ResearchBlock(nil), a.Sections...)
	}
	return out
}

func clonePeriods(in []models.PublicationPeriod) []models.PublicationPeriod {
	out := make([]models.PublicationPeriod, len(in))
	for i, p := range in {
		out[i] = p
		out[i].Years = make([]models.PublicationYear, len(p.Years))
		for j, y := range p.Years {
			out[i].Years[j] = y
			out[i].Years[j].Entries = append([]models.PublicationEntry(nil), y.Entries...)
		}
	}
	return out
}

func cloneBoard(in []models.BoardItem) []models.BoardItem {
	out := make([]models.BoardItem, len(in))
	for i, b := range in {
		out[i] = b
		out[i].Images = append([]string(nil), b.Images...)
		out[i].Links = append([]models.BoardLink(nil), b.Links...)
		if b.Views != nil {
			v := *b.Views
			out[i].Views = &v
		}
	}
	return out
}
