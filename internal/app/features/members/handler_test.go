package members

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fedl/labsite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(testutil.Content(t), nil, zap.NewNop())
}

func TestBuildData_Layouts(t *testing.T) {
	tests := []struct {
		slug    string
		layout  Layout
		count   int
		heading string
	}{
		{"professor", LayoutProfile, 0, "Professor"},
		{"research-professor", LayoutGrid, 1, "Research Professor"},
		{"post-doctors", LayoutGrid, 1, "Post Doctors"},
		{"ph.d-students", LayoutGrid, 13, "Ph.D Students"},
		{"m.s-students", LayoutGrid, 4, "M.S Students"},
		{"undergraduate-students", LayoutEmpty, 0, "Undergraduate Students"},
		{"alumni", LayoutCompact, 51, "Alumni"},
		{"staff", LayoutGrid, 1, "Staff"},
		{"visiting-scholars", LayoutEmpty, 0, "Visiting Scholars"},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/members/"+tt.slug, nil)
			data := h.buildData(req, tt.slug)

			if data.Layout != tt.layout {
				t.Errorf("Layout = %q, want %q", data.Layout, tt.layout)
			}
			if len(data.Members) != tt.count {
				t.Errorf("members = %d, want %d", len(data.Members), tt.count)
			}
			if data.Heading != tt.heading {
				t.Errorf("Heading = %q, want %q", data.Heading, tt.heading)
			}
		})
	}
}

func TestBuildData_EmptyCopy(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := h.buildData(req, "undergraduate-students").EmptyCopy; got != undergradEmptyCopy {
		t.Errorf("undergrad copy = %q", got)
	}
	if got := h.buildData(req, "visiting-scholars").EmptyCopy; got != defaultEmptyCopy {
		t.Errorf("default copy = %q", got)
	}
	if got := h.buildData(req, "alumni").EmptyCopy; got != "" {
		t.Errorf("populated category should have no empty copy, got %q", got)
	}
}

func TestBuildData_Profile(t *testing.T) {
	h := newTestHandler(t)
	data := h.buildData(httptest.NewRequest(http.MethodGet, "/", nil), "professor")

	if data.Profile.Name == "" || data.Profile.ScholarURL == "" {
		t.Fatalf("profile incomplete: %+v", data.Profile)
	}
	titles := map[string]bool{}
	for _, s := range data.Profile.Sections {
		titles[s.Title] = true
		for _, it := range s.Items {
			if it.TextHTML == "" {
				t.Errorf("%s item %q has no rendered text", s.Title, it.Text)
			}
		}
	}
	for _, want := range []string{"Degree", "Career", "Award"} {
		if !titles[want] {
			t.Errorf("profile missing %s section", want)
		}
	}
}

func TestSidebar(t *testing.T) {
	links := sidebar("ph.d-students")
	if len(links) != 8 {
		t.Fatalf("sidebar = %d, want 8", len(links))
	}
	if links[0].Href != "#members-professor" {
		t.Errorf("first href = %q", links[0].Href)
	}
	if links[3].Name != "Ph.D Students" || !links[3].Active {
		t.Errorf("ph.d link = %+v", links[3])
	}
	for i, l := range links {
		if i != 3 && l.Active {
			t.Errorf("link %q unexpectedly active", l.Name)
		}
	}
}
