package contentstore_test

import (
	"errors"
	"testing"

	"github.com/fedl/labsite/internal/app/content"
	contentstore "github.com/fedl/labsite/internal/app/store/content"
	"github.com/fedl/labsite/internal/testutil"
)

func TestLoad_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := contentstore.New(db).Load(ctx)
	if !errors.Is(err, contentstore.ErrNoContent) {
		t.Fatalf("Load() error = %v, want ErrNoContent", err)
	}
}

func TestReplaceThenLoad_PreservesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := testutil.NewFixtures(t, db).SeedEmbedded(ctx)

	got, err := contentstore.New(db).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got.Members) != len(want.Members) {
		t.Fatalf("members: got %d, want %d", len(got.Members), len(want.Members))
	}
	for i := range want.Members {
		if got.Members[i].ID != want.Members[i].ID {
			t.Fatalf("member %d: got %q, want %q", i, got.Members[i].ID, want.Members[i].ID)
		}
	}
	for i := range want.Board {
		if got.Board[i].ID != want.Board[i].ID {
			t.Fatalf("board item %d: got %q, want %q", i, got.Board[i].ID, want.Board[i].ID)
		}
	}
	for i := range want.Publications {
		if got.Publications[i].Key != want.Publications[i].Key {
			t.Errorf("period %d: got %q, want %q", i, got.Publications[i].Key, want.Publications[i].Key)
		}
	}
	if got.Site.Email != want.Site.Email {
		t.Errorf("site email: got %q, want %q", got.Site.Email, want.Site.Email)
	}
	if got.Profile.Name != want.Profile.Name {
		t.Errorf("profile name: got %q, want %q", got.Profile.Name, want.Profile.Name)
	}

	store, err := content.New(got)
	if err != nil {
		t.Fatalf("content.New(loaded) error = %v", err)
	}
	if store.Counts() != testutil.Content(t).Counts() {
		t.Errorf("counts differ: %+v vs %+v", store.Counts(), testutil.Content(t).Counts())
	}
}

func TestReplace_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	snap := f.SeedEmbedded(ctx)
	f.SeedEmbedded(ctx)

	counts, err := contentstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if counts[contentstore.CollMembers] != int64(len(snap.Members)) {
		t.Errorf("members = %d, want %d", counts[contentstore.CollMembers], len(snap.Members))
	}
	if counts[contentstore.CollBoard] != int64(len(snap.Board)) {
		t.Errorf("board = %d, want %d", counts[contentstore.CollBoard], len(snap.Board))
	}
}

func TestReplace_RejectsInvalidSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	snap, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	snap.Members[0].Name = ""

	err = contentstore.New(db).Replace(ctx, snap)
	if !content.IsValidationError(err) {
		t.Fatalf("Replace() error = %v, want validation error", err)
	}

	counts, err := contentstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if counts[contentstore.CollMembers] != 0 {
		t.Errorf("invalid snapshot was partially written")
	}
}
