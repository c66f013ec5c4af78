package navigation

// MenuItem is one navbar entry. Every Href is a same-document fragment so the
// client script can hand it to the fragment resolver.
type MenuItem struct {
	Name     string
	Href     string
	SubItems []MenuItem
}

// HasSubItems reports whether the entry renders a dropdown.
func (m MenuItem) HasSubItems() bool { return len(m.SubItems) > 0 }

// ContactHref is the navbar's call-to-action link.
const ContactHref = "#contact"

// Menu returns the navbar in display order. The slice is fresh on every call.
func Menu() []MenuItem {
	return []MenuItem{
		{Name: "Home", Href: "#"},
		{
			Name: "Research",
			Href: "#research",
			SubItems: []MenuItem{
				{Name: "2D materials", Href: "#research-2d-materials"},
				{Name: "High performance flexible electronics", Href: "#research-high-performance-flexible-electronics"},
				{Name: "Neural sensors and brain-computer interfaces", Href: "#research-neural-sensors-and-brain-computer-interfaces"},
			},
		},
		{
			Name: "Publications",
			Href: "#publications",
			SubItems: []MenuItem{
				{Name: "Present - 2021", Href: "#publications-present-2021"},
				{Name: "2020 - 2011", Href: "#publications-2020-2011"},
				{Name: "2010 and earlier", Href: "#publications-2010-and-earlier"},
				{Name: "Book Chapters", Href: "#publications-book-chapters"},
			},
		},
		{
			Name: "Members",
			Href: "#members",
			SubItems: []MenuItem{
				{Name: "Professor", Href: "#members-professor"},
				{Name: "Research Professor", Href: "#members-research-professor"},
				{Name: "Post doctors", Href: "#members-post-doctors"},
				{Name: "Ph.D students", Href: "#members-ph.d-students"},
				{Name: "M.S students", Href: "#members-m.s-students"},
				{Name: "Undergraduate students", Href: "#members-undergraduate-students"},
				{Name: "Alumni", Href: "#members-alumni"},
				{Name: "Staff", Href: "#members-staff"},
			},
		},
		{
			Name: "Board",
			Href: "#board",
			SubItems: []MenuItem{
				{Name: "Notice", Href: "#board-notice"},
				{Name: "News", Href: "#board-news"},
				{Name: "Gallery", Href: "#board-gallery"},
			},
		},
	}
}
