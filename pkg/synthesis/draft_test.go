package synthesis

import (
	"testing"
)

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTitle   string
		wantSummary string
		wantContent string
		wantSlug    string
	}{
		{
			name:        "title prefix and summary block",
			raw:         "Title: Reliable Plumbing for Busy Homes\nSummary: Fast fixes at flat rates.\n\nOur team covers the whole city.",
			wantTitle:   "Reliable Plumbing for Busy Homes",
			wantSummary: "Fast fixes at flat rates.",
			wantContent: "Our team covers the whole city.",
			wantSlug:    "reliable-plumbing-for-busy-homes",
		},
		{
			name:        "markdown heading title",
			raw:         "# The Big Launch\n\nBody paragraph one.\nBody paragraph two.",
			wantTitle:   "The Big Launch",
			wantContent: "Body paragraph one.\nBody paragraph two.",
			wantSlug:    "the-big-launch",
		},
		{
			name:        "multi line summary",
			raw:         "My Title\nSummary: first part\ncontinues here\n\nrest of body",
			wantTitle:   "My Title",
			wantSummary: "first part continues here",
			wantContent: "rest of body",
			wantSlug:    "my-title",
		},
		{
			name:      "empty input",
			raw:       "",
			wantTitle: "",
			wantSlug:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDraft(tt.raw)

			if d.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", d.Title, tt.wantTitle)
			}
			if d.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", d.Summary, tt.wantSummary)
			}
			if d.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", d.Content, tt.wantContent)
			}
			if d.Slug != tt.wantSlug {
				t.Errorf("Slug = %q, want %q", d.Slug, tt.wantSlug)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
