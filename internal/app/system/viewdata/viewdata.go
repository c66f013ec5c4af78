// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/fedl/labsite/internal/app/system/navigation"
	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, site, viewrouter.KindMembers, "Members", "/"),
//	}
type BaseVM struct {
	// Site settings (from the content store)
	SiteName    string
	ShortName   string
	LogoURL     string
	Affiliation string
	University  string
	Year        int

	// Navbar
	Menu        []navigation.MenuItem
	ContactHref string
	LightMode   bool // every view except the landing page uses the light navbar

	// Page context
	Kind        viewrouter.Kind
	Title       string
	BackURL     string
	CurrentPath string

	// Client script settings
	HeaderOffset int
	SettleMillis int64
}

// ClientSettings are the values the layout hands to labsite.js.
type ClientSettings struct {
	HeaderOffset int
	ScrollSettle time.Duration
}

var client = ClientSettings{HeaderOffset: viewrouter.DefaultHeaderOffset}

// Init sets the client script settings. Call this once at startup from bootstrap.
func Init(cs ClientSettings) {
	if cs.HeaderOffset < 0 {
		cs.HeaderOffset = 0
	}
	client = cs
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - site: lab-wide settings from the content store
//   - kind: which view is being rendered
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, site models.SiteSettings, kind viewrouter.Kind, title, backDefault string) BaseVM {
	name := site.SiteName
	if name == "" {
		name = models.DefaultSiteName
	}

	return BaseVM{
		SiteName:     name,
		ShortName:    site.ShortName,
		LogoURL:      site.LogoURL,
		Affiliation:  site.Affiliation,
		University:   site.University,
		Year:         time.Now().Year(),
		Menu:         navigation.Menu(),
		ContactHref:  navigation.ContactHref,
		LightMode:    kind != viewrouter.KindMain,
		Kind:         kind,
		Title:        title,
		BackURL:      httpnav.ResolveBackURL(r, backDefault),
		CurrentPath:  httpnav.CurrentPath(r),
		HeaderOffset: client.HeaderOffset,
		SettleMillis: client.ScrollSettle.Milliseconds(),
	}
}

// PageTitle joins a page title with the site name ("Alumni | Flexible ...").
func (b BaseVM) PageTitle() string {
	if b.Title == "" {
		return b.SiteName
	}
	return b.Title + " | " + b.SiteName
}

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators (65883 -> "65,883").
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
