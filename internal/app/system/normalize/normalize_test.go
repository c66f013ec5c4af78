package normalize

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ph.D students", "ph.d-students"},
		{"M.S students", "m.s-students"},
		{"Undergraduate students", "undergraduate-students"},
		{"Research Professor", "research-professor"},
		{"Alumni", "alumni"},
		{"Notice", "notice"},
		{"ph.d-students", "ph.d-students"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Slug(got); again != got {
				t.Errorf("Slug not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"award", "award"},
		{"  award  ", "award"},
		{"\t\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QueryParam(tt.input)
			if got != tt.want {
				t.Errorf("QueryParam(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("   ") {
		t.Error("whitespace should be blank")
	}
	if !IsBlank("") {
		t.Error("empty should be blank")
	}
	if IsBlank(" a ") {
		t.Error(`" a " should not be blank`)
	}
}

func TestDisplayCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ph.d-students", "Ph.D Students"},
		{"m.s-students", "M.S Students"},
		{"undergraduate-students", "Undergraduate Students"},
		{"post-doctors", "Post Doctors"},
		{"alumni", "Alumni"},
		{"visiting-scholars", "Visiting Scholars"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DisplayCategory(tt.input)
			if got != tt.want {
				t.Errorf("DisplayCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"notice", "Notice"},
		{"news", "News"},
		{"gallery", "Gallery"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DisplayType(tt.input)
			if got != tt.want {
				t.Errorf("DisplayType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
