package content_test

import (
	"strings"
	"testing"

	"github.com/fedl/labsite/internal/app/content"
	"github.com/fedl/labsite/internal/domain/models"
)

func embedded(t *testing.T) content.Snapshot {
	t.Helper()
	snap, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return snap
}

func TestValidate_Embedded(t *testing.T) {
	if err := content.Validate(embedded(t)); err != nil {
		t.Fatalf("embedded content invalid: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*content.Snapshot)
		want   string
	}{
		{
			name:   "unknown member category",
			mutate: func(s *content.Snapshot) { s.Members[3].Category = "Visiting Scholars" },
			want:   `unknown category "Visiting Scholars"`,
		},
		{
			name:   "duplicate member id",
			mutate: func(s *content.Snapshot) { s.Members[1].ID = s.Members[0].ID },
			want:   "duplicate id",
		},
		{
			name:   "unknown board type",
			mutate: func(s *content.Snapshot) { s.Board[0].Type = "Event" },
			want:   `unknown type "Event"`,
		},
		{
			name:   "missing research area",
			mutate: func(s *content.Snapshot) { s.Research = s.Research[:2] },
			want:   "want 3 areas, got 2",
		},
		{
			name:   "title does not match topic",
			mutate: func(s *content.Snapshot) { s.Research[0].Title = "Graphene" },
			want:   "does not slug to topic",
		},
		{
			name:   "missing period",
			mutate: func(s *content.Snapshot) { s.Publications = s.Publications[1:] },
			want:   `missing period "present-2021"`,
		},
		{
			name: "link without url",
			mutate: func(s *content.Snapshot) {
				s.Board[0].Links = []models.BoardLink{{Label: "Article"}}
			},
			want: "label and url are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := embedded(t)
			tt.mutate(&snap)

			err := content.Validate(snap)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !content.IsValidationError(err) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate_AggregatesProblems(t *testing.T) {
	snap := embedded(t)
	snap.Members[0].Name = ""
	snap.Board[0].Title = ""

	err := content.Validate(snap)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "missing name") || !strings.Contains(msg, "missing title") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
	if _, err := content.New(snap); err == nil {
		t.Error("New should reject an invalid snapshot")
	}
}

func TestValidate_GalleryWithoutImageIsAllowed(t *testing.T) {
	snap := embedded(t)
	snap.Board = append(snap.Board, models.BoardItem{
		ID:    "g-empty",
		Title: "No photos",
		Date:  "2024-01-01",
		Type:  models.BoardGallery,
	})
	if err := content.Validate(snap); err != nil {
		t.Fatalf("gallery item without images should load: %v", err)
	}
}
