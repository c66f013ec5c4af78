package filter_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/app/system/filter"
	"github.com/fedl/labsite/internal/domain/models"
)

func store(t *testing.T) *content.Store {
	t.Helper()
	st, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	return st
}

func TestByCategory(t *testing.T) {
	members := store(t).Members()

	tests := []struct {
		slug string
		want int
	}{
		{"professor", 1},
		{"research-professor", 1},
		{"post-doctors", 1},
		{"ph.d-students", 13},
		{"m.s-students", 4},
		{"undergraduate-students", 0},
		{"alumni", 51},
		{"staff", 1},
		{"Ph.D students", 13},
		{"visiting-scholars", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got := filter.ByCategory(members, tt.slug)
			if len(got) != tt.want {
				t.Fatalf("ByCategory(%q) returned %d members, want %d", tt.slug, len(got), tt.want)
			}
		})
	}
}

func TestByCategory_PreservesOrder(t *testing.T) {
	members := store(t).Members()
	got := filter.ByCategory(members, "ph.d-students")

	var want []models.Member
	for _, m := range members {
		if m.Category == models.CategoryPhDStudents {
			want = append(want, m)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("ByCategory changed the authored order")
	}
}

func TestByType_Partitions(t *testing.T) {
	items := store(t).Board()

	total := 0
	seen := map[string]bool{}
	for _, typ := range models.BoardTypes {
		part := filter.ByType(items, string(typ))
		for _, it := range part {
			if it.Type != typ {
				t.Errorf("ByType(%s) returned a %s item", typ, it.Type)
			}
			if seen[it.ID] {
				t.Errorf("item %s appears in two partitions", it.ID)
			}
			seen[it.ID] = true
		}
		total += len(part)
	}
	if total != len(items) {
		t.Errorf("partitions cover %d items, want %d", total, len(items))
	}
	if n := len(filter.ByType(items, "notice")); n != 48 {
		t.Errorf("notice count = %d, want 48", n)
	}
	if n := len(filter.ByType(items, "events")); n != 0 {
		t.Errorf("unknown type returned %d items", n)
	}
}

func TestTextSearch_BlankIsIdentity(t *testing.T) {
	items := store(t).Board()
	for _, q := range []string{"", "   ", "\t"} {
		got := filter.TextSearch(items, q)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("TextSearch(%q) changed the input", q)
		}
	}
}

func TestTextSearch_Idempotent(t *testing.T) {
	items := store(t).Board()
	for _, q := range []string{"award", "MoS2", "연세", "zzz-no-hit"} {
		once := filter.TextSearch(items, q)
		twice := filter.TextSearch(once, q)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("TextSearch(%q) not idempotent", q)
		}
	}
}

func TestTextSearch_NoticeAward(t *testing.T) {
	items := store(t).Board()
	got := filter.TextSearch(filter.ByType(items, "notice"), "award")

	if len(got) != 12 {
		t.Errorf("got %d notice hits for award, want 12", len(got))
	}
	found := false
	for _, it := range got {
		if it.Type != models.BoardNotice {
			t.Errorf("non-notice item %s in results", it.ID)
		}
		if !strings.Contains(strings.ToLower(it.Title), "award") && !strings.Contains(strings.ToLower(it.Source), "award") {
			t.Errorf("item %s does not contain the query", it.ID)
		}
		if it.Title == "[Award] 김범진 학생 삼성디스플레이 산학협력논문대회 금상 수상" {
			found = true
		}
	}
	if !found {
		t.Error("expected the 김범진 award notice in the results")
	}
}

func TestTextSearch_MatchesSource(t *testing.T) {
	items := []models.BoardItem{
		{ID: "a", Title: "Flexible display", Source: "Korea Herald"},
		{ID: "b", Title: "Herald of graphene"},
		{ID: "c", Title: "Unrelated"},
	}
	got := filter.TextSearch(items, "HERALD")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("unexpected results: %+v", got)
	}
}

func TestTextSearch_UntrimmedMatch(t *testing.T) {
	items := []models.BoardItem{
		{ID: "a", Title: "Best poster award"},
		{ID: "b", Title: "[Award] gold prize"},
	}
	got := filter.TextSearch(items, " award")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("leading space should be part of the match, got %+v", got)
	}
}

func TestTopN(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		n    int
		want []int
	}{
		{3, []int{1, 2, 3}},
		{5, []int{1, 2, 3, 4, 5}},
		{10, []int{1, 2, 3, 4, 5}},
		{0, []int{}},
		{-1, []int{}},
	}
	for _, tt := range tests {
		got := filter.TopN(items, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("TopN(%d) len = %d, want %d", tt.n, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("TopN(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}
