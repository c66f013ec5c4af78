package ctl

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fedl/labsite/internal/app/system/viewrouter"
)

// run executes labsitectl with args and returns stdout. The config file is
// pointed at a path that does not exist so the developer's config.yaml is
// never read.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestValidate_Embedded(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "content ok: 3 research areas") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("research: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "validate", "--file", path)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(out, "research: want 3 areas, got 0") {
		t.Errorf("problem list missing research count:\n%s", out)
	}
	if !strings.Contains(err.Error(), "content problem(s)") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExport_RoundTripsThroughValidate(t *testing.T) {
	out, err := run(t, "export")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "research:") || !strings.Contains(out, "board:") {
		t.Fatalf("export output missing sections:\n%.200s", out)
	}

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	if vout, err := run(t, "validate", "--file", path); err != nil {
		t.Fatalf("exported content did not validate: %v\n%s", err, vout)
	}
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
		{
			name:     "research view",
			from:     "/",
			href:     "#research-2d-materials",
			action:   viewrouter.ActionNavigate,
			view:     viewrouter.KindResearch,
			location: "/research/2d-materials",
		},
		{
			name:   "section on landing",
			from:   "/",
			href:   "#members",
			action: viewrouter.ActionScroll,
			view:   viewrouter.KindMain,
		},
		{
			name:     "section from contact",
			from:     "/contact",
			href:     "#members",
			action:   viewrouter.ActionScroll,
			view:     viewrouter.KindMain,
			location: "/?section=members",
			deferred: true,
		},
		{
			name:   "external link",
			from:   "/contact",
			href:   "https://example.com",
			action: viewrouter.ActionNone,
			view:   viewrouter.KindContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "resolve", "--from", tt.from, tt.href)
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			var got resolved
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if got.Href != tt.href {
				t.Errorf("href = %q, want %q", got.Href, tt.href)
			}
			if got.Action != tt.action || got.View != tt.view {
				t.Errorf("got %s/%s, want %s/%s", got.Action, got.View, tt.action, tt.view)
			}
			if got.Location != tt.location {
				t.Errorf("location = %q, want %q", got.Location, tt.location)
			}
			if got.Deferred != tt.deferred {
				t.Errorf("deferred = %v, want %v", got.Deferred, tt.deferred)
			}
		})
	}
}

func TestResolve_OnePerLine(t *testing.T) {
	out, err := run(t, "resolve", "#contact", "#board")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 lines, got %d:\n%s", n, out)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := "content_source: mongo\nmongo_database: from_file\nheader_offset: 64\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LABSITE_MONGO_DATABASE", "from_env")

	cfg, err := LoadConfig(path, map[string]any{"mongo_uri": "mongodb://flag:27017"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ContentSource != SourceMongo {
		t.Errorf("ContentSource = %q, want mongo", cfg.ContentSource)
	}
	if cfg.MongoDatabase != "from_env" {
		t.Errorf("MongoDatabase = %q, env should override file", cfg.MongoDatabase)
	}
	if cfg.MongoURI != "mongodb://flag:27017" {
		t.Errorf("MongoURI = %q, want flag value", cfg.MongoURI)
	}
	if cfg.HeaderOffset != 64 {
		t.Errorf("HeaderOffset = %d, want 64", cfg.HeaderOffset)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ContentSource != SourceEmbedded || cfg.MongoDatabase != "fedl" || cfg.HeaderOffset != 80 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentSource = "files"
	if err := cfg.Validate(); err == nil {
		t.Error("expected unknown content_source to fail")
	}

	cfg = DefaultConfig()
	cfg.MongoDatabase = ""
	if err := cfg.RequireMongo(); err == nil {
		t.Error("expected missing database to fail")
	}
}

func TestSeed_RequiresMongoTarget(t *testing.T) {
	out, err := run(t, "seed", "--mongo-database", "")
	if err == nil {
		t.Fatalf("expected seed without a database to fail:\n%s", out)
	}
	if !strings.Contains(err.Error(), "mongo_database is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "labsitectl "+Version+"\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"validate", "resolve", "seed", "export", "version"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (err=%v)", name, err)
		}
	}
}
