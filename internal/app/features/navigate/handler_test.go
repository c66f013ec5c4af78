package navigate

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler() *Handler {
	return NewHandler(viewrouter.DefaultHeaderOffset, nil, zap.NewNop())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		href     string
		action   viewrouter.Action
		view     viewrouter.Kind
		location string
		deferred bool
	}{
		{"home link", "/board/news", "#", viewrouter.ActionNavigate, viewrouter.KindMain, "/", false},
		{"contact", "/", "#contact", viewrouter.ActionNavigate, viewrouter.KindContact, "/contact", false},
		{"research pillar", "/", "#research-2d-materials", viewrouter.ActionNavigate, viewrouter.KindResearch, "/research/2d-materials", false},
		{"book chapters", "/", "#publications-book-chapters", viewrouter.ActionNavigate, viewrouter.KindPublications, "/publications/book-chapters", false},
		{"members category", "/", "#members-ph.d-students", viewrouter.ActionNavigate, viewrouter.KindMembers, "/members/ph.d-students", false},
		{"unknown members slug", "/", "#members-visitors", viewrouter.ActionNavigate, viewrouter.KindMembers, "/members/visitors", false},
		{"board type drops query", "/board/notice?q=award", "#board-gallery", viewrouter.ActionNavigate, viewrouter.KindBoard, "/board/gallery", false},
		{"section on landing", "/", "#research", viewrouter.ActionScroll, viewrouter.KindMain, "", false},
		{"section from detail", "/members/alumni", "#publications", viewrouter.ActionScroll, viewrouter.KindMain, "/?section=publications", true},
		{"unknown from path", "/nowhere/at/all", "#board", viewrouter.ActionScroll, viewrouter.KindMain, "", false},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.Resolve(tt.from, tt.href)
			if res.Action != tt.action {
				t.Errorf("Action = %q, want %q", res.Action, tt.action)
			}
			if res.View != tt.view {
				t.Errorf("View = %q, want %q", res.View, tt.view)
			}
			if res.Location != tt.location {
				t.Errorf("Location = %q, want %q", res.Location, tt.location)
			}
			if res.Deferred != tt.deferred {
				t.Errorf("Deferred = %v, want %v", res.Deferred, tt.deferred)
			}
		})
	}
}

func TestResolve_CrossViewNeverScrollsToSection(t *testing.T) {
	h := newTestHandler()
	for _, f := range viewrouter.Fragments() {
		if f.Section {
			continue
		}
		res := h.Resolve("/", "#"+f.Fragment)
		if res.Action != viewrouter.ActionNavigate {
			t.Errorf("#%s: Action = %q, want navigate", f.Fragment, res.Action)
		}
		if res.Scroll.Target != "" || res.Scroll.Behavior != viewrouter.Instant {
			t.Errorf("#%s: Scroll = %+v, want instant to top", f.Fragment, res.Scroll)
		}
	}
}

func TestResolve_SectionScrollOffset(t *testing.T) {
	h := NewHandler(64, nil, zap.NewNop())
	res := h.Resolve("/", "#board")
	if res.Scroll.Offset != 64 || res.Scroll.Target != "board" || res.Scroll.Behavior != viewrouter.Smooth {
		t.Errorf("Scroll = %+v", res.Scroll)
	}
}

func TestServeFragment_JSON(t *testing.T) {
	h := newTestHandler()
	req := testutil.NewRequest(http.MethodGet, "/go/publications?from=/research/2d-materials")
	req.Header.Set("Accept", "application/json")
	req = testutil.WithChiURLParam(req, "fragment", "publications")
	rec := testutil.NewRecorder()

	h.ServeFragment(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertJSON(t)

	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Deferred || res.Location != "/?section=publications" {
		t.Errorf("result = %+v", res)
	}
}

func TestServeFragment_Redirect(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		fragment string
		want     string
	}{
		{"view", "/go/board-news", "board-news", "/board/news"},
		{"home", "/go/?from=/contact", "", "/"},
		{"landing section", "/go/members", "members", "/?section=members"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, tt.target), "fragment", tt.fragment)
			rec := testutil.NewRecorder()
			h.ServeFragment(rec, req)
			rec.AssertRedirect(t, tt.want)
		})
	}
}

func TestServeTable(t *testing.T) {
	h := newTestHandler()
	rec := testutil.NewRecorder()
	h.ServeTable(rec, testutil.NewRequest(http.MethodGet, "/go/fragments.json"))

	rec.AssertJSON(t)
	var entries []viewrouter.FragmentEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != len(viewrouter.Fragments()) {
		t.Errorf("entries = %d, want %d", len(entries), len(viewrouter.Fragments()))
	}
}
