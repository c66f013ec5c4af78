package viewdata

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fedl/labsite/internal/app/system/viewrouter"
	"github.com/fedl/labsite/internal/domain/models"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{98, "98"},
		{260, "260"},
		{65883, "65,883"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNewBaseVM_LightModeOffLanding(t *testing.T) {
	site := models.SiteSettings{SiteName: "FEDL Test", ShortName: "FEDL"}

	main := NewBaseVM(httptest.NewRequest("GET", "/", nil), site, viewrouter.KindMain, "", "/")
	if main.LightMode {
		t.Error("landing page should use the dark navbar")
	}
	if main.PageTitle() != "FEDL Test" {
		t.Errorf("PageTitle() = %q", main.PageTitle())
	}

	members := NewBaseVM(httptest.NewRequest("GET", "/members/alumni", nil), site, viewrouter.KindMembers, "Alumni", "/")
	if !members.LightMode {
		t.Error("detail pages should use the light navbar")
	}
	if members.PageTitle() != "Alumni | FEDL Test" {
		t.Errorf("PageTitle() = %q", members.PageTitle())
	}
	if len(members.Menu) == 0 {
		t.Error("menu not populated")
	}
	if members.ContactHref != "#contact" {
		t.Errorf("ContactHref = %q", members.ContactHref)
	}
}

func TestNewBaseVM_DefaultSiteName(t *testing.T) {
	vm := NewBaseVM(httptest.NewRequest("GET", "/contact", nil), models.SiteSettings{}, viewrouter.KindContact, "Contact", "/")
	if vm.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName = %q, want default", vm.SiteName)
	}
}

func TestInit_ClientSettings(t *testing.T) {
	t.Cleanup(func() { Init(ClientSettings{HeaderOffset: viewrouter.DefaultHeaderOffset}) })

	Init(ClientSettings{HeaderOffset: -5, ScrollSettle: 150 * time.Millisecond})
	vm := NewBaseVM(httptest.NewRequest("GET", "/", nil), models.SiteSettings{}, viewrouter.KindMain, "", "/")

	if vm.HeaderOffset != 0 {
		t.Errorf("HeaderOffset = %d, want 0", vm.HeaderOffset)
	}
	if vm.SettleMillis != 150 {
		t.Errorf("SettleMillis = %d, want 150", vm.SettleMillis)
	}
}
