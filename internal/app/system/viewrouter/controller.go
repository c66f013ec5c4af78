// internal/app/system/viewrouter/controller.go
package viewrouter

import "strings"

// DefaultHeaderOffset is the fixed header height subtracted from section
// scroll targets.
const DefaultHeaderOffset = 80

// Behavior is how a scroll is performed.
type Behavior string

const (
	Instant Behavior = "instant"
	Smooth  Behavior = "smooth"
)

// Scroll is a scroll command for the client. An empty Target means the top
// of the page.
type Scroll struct {
	Target   string   `json:"target,omitempty"`
	Offset   int      `json:"offset"`
	Behavior Behavior `json:"behavior"`
}

// ToTop is issued on every view change.
var ToTop = Scroll{Behavior: Instant}

// Action says what an intercepted link does.
type Action string

const (
	// ActionNone means the link was not intercepted; the browser follows it.
	ActionNone Action = "none"
	// ActionNavigate means the view changed.
	ActionNavigate Action = "navigate"
	// ActionScroll means a section scroll, possibly after a view change.
	ActionScroll Action = "scroll"
)

// Transition is the result of intercepting a link.
type Transition struct {
	Action Action
	View   View
	Scroll Scroll
	// Deferred is set when the scroll waits for RenderComplete because the
	// link first switched back to Main.
	Deferred bool
}

// Options tunes a Controller.
type Options struct {
	HeaderOffset int
}

// Controller holds the current view and any pending section scroll. It is
// not safe for concurrent use; the server builds one per request.
type Controller struct {
	view    View
	pending *Scroll
	reveal  bool
	offset  int
}

// NewController starts in Main.
func NewController(opts Options) *Controller {
	off := opts.HeaderOffset
	if off < 0 {
		off = 0
	}
	return &Controller{view: Main{}, reveal: true, offset: off}
}

// NewControllerAt starts in v, for requests that arrive on a detail page.
func NewControllerAt(v View, opts Options) *Controller {
	c := NewController(opts)
	if v != nil {
		c.view = v
		c.reveal = v.Kind() == KindMain
	}
	return c
}

// View returns the current view.
func (c *Controller) View() View { return c.view }

// RevealEnabled reports whether the landing reveal animation may run. It is
// set whenever Main is entered.
func (c *Controller) RevealEnabled() bool { return c.reveal }

// Navigate replaces the view unconditionally. The query is kept only for
// BoardDetail. A pending section scroll is dropped.
func (c *Controller) Navigate(v View, query string) Scroll {
	if v == nil {
		v = Main{}
	}
	c.view = WithQuery(v, query)
	c.pending = nil
	c.reveal = c.view.Kind() == KindMain
	return ToTop
}

// ScrollToSection scrolls to the element with id anchor. From Main the scroll
// is returned immediately (ok is true). From any other view the controller
// switches to Main and holds the scroll until RenderComplete.
func (c *Controller) ScrollToSection(anchor string) (Scroll, bool) {
	s := Scroll{Target: anchor, Offset: c.offset, Behavior: Smooth}
	if c.view.Kind() == KindMain {
		return s, true
	}
	c.view = Main{}
	c.reveal = true
	c.pending = &s
	return Scroll{}, false
}

// Resume records a pending section scroll on Main without changing the view.
// It is used when a deferred scroll crosses a page load.
func (c *Controller) Resume(anchor string) {
	if anchor == "" || c.view.Kind() != KindMain {
		return
	}
	c.pending = &Scroll{Target: anchor, Offset: c.offset, Behavior: Smooth}
}

// Pending returns the held scroll, if any.
func (c *Controller) Pending() (Scroll, bool) {
	if c.pending == nil {
		return Scroll{}, false
	}
	return *c.pending, true
}

// RenderComplete releases the pending scroll once the page is rendered. The
// scroll is dropped when exists reports that the target element is missing.
// The pending slot is cleared either way.
func (c *Controller) RenderComplete(exists func(id string) bool) (Scroll, bool) {
	if c.pending == nil {
		return Scroll{}, false
	}
	s := *c.pending
	c.pending = nil
	if exists != nil && !exists(s.Target) {
		return Scroll{}, false
	}
	return s, true
}

// Intercept handles a same-document link. Hrefs that do not start with '#'
// are left to the browser.
func (c *Controller) Intercept(href string) Transition {
	frag, ok := strings.CutPrefix(href, "#")
	if !ok {
		return Transition{Action: ActionNone, View: c.view}
	}

	if v, ok := Resolve(frag); ok {
		s := c.Navigate(v, "")
		return Transition{Action: ActionNavigate, View: c.view, Scroll: s}
	}

	s, now := c.ScrollToSection(frag)
	if now {
		return Transition{Action: ActionScroll, View: c.view, Scroll: s}
	}
	held, _ := c.Pending()
	return Transition{Action: ActionScroll, View: c.view, Scroll: held, Deferred: true}
}
