package viewrouter_test

import (
	"testing"

	"github.com/fedl/labsite/internal/app/system/viewrouter"
)

func TestPathRoundTrip(t *testing.T) {
	views := []viewrouter.View{
		viewrouter.Main{},
		viewrouter.Contact{},
		viewrouter.ResearchDetail{Topic: "2d-materials"},
		viewrouter.PublicationDetail{Period: "book-chapters"},
		viewrouter.MemberDetail{Category: "ph.d-students"},
		viewrouter.BoardDetail{Type: "notice"},
		viewrouter.BoardDetail{Type: "news", Query: "flexible display"},
		viewrouter.BoardDetail{Type: "notice", Query: "수상"},
	}

	for _, v := range views {
		t.Run(v.Path(), func(t *testing.T) {
			got, ok := viewrouter.FromPath(v.Path())
			if !ok {
				t.Fatalf("FromPath(%q) not recognized", v.Path())
			}
			if got != v {
				t.Errorf("FromPath(%q) = %#v, want %#v", v.Path(), got, v)
			}
		})
	}
}

func TestFromPath_Unknown(t *testing.T) {
	for _, p := range []string{"/static/js/labsite.js", "/board/search?q=x", "/members", "/members/a/b", "/api/members"} {
		if _, ok := viewrouter.FromPath(p); ok {
			t.Errorf("FromPath(%q) should not match a view", p)
		}
	}
}

func TestBoardDetail_BlankQueryOmitted(t *testing.T) {
	v := viewrouter.BoardDetail{Type: "notice", Query: "   "}
	if v.Path() != "/board/notice" {
		t.Errorf("Path() = %q", v.Path())
	}
}

func TestResolve_Sections(t *testing.T) {
	for _, f := range []string{"research", "publications", "members", "board", "research-graphene", "publications-1990s", "anything"} {
		if _, ok := viewrouter.Resolve(f); ok {
			t.Errorf("Resolve(%q) should be a section, not a view", f)
		}
	}
}

func TestFragments_ResolveToTheirViews(t *testing.T) {
	entries := viewrouter.Fragments()
	if len(entries) != 2+3+4+8+3+4 {
		t.Fatalf("got %d entries", len(entries))
	}
	for _, e := range entries {
		v, ok := viewrouter.Resolve(e.Fragment)
		if e.Section {
			if ok {
				t.Errorf("section %q resolved to a view", e.Fragment)
			}
			continue
		}
		if !ok {
			t.Errorf("fragment %q did not resolve", e.Fragment)
			continue
		}
		if v.Path() != e.Path || v.Kind() != e.Kind {
			t.Errorf("fragment %q: got %s %s, table says %s %s", e.Fragment, v.Kind(), v.Path(), e.Kind, e.Path)
		}
		if v.Fragment() != e.Fragment {
			t.Errorf("Fragment() = %q, want %q", v.Fragment(), e.Fragment)
		}
	}
}
