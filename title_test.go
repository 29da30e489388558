package md2tex

import "testing"

func TestHeadingTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"atx heading", "# Rapport\n\ntext", "Rapport"},
		{"setext heading", "Rapport\n=======\n", "Rapport"},
		{"first of several", "# One\n# Two", "One"},
		{"skips lower levels", "## Section\n### Sub\n# Main", "Main"},
		{"inline markup dropped", "# **Bold** and [link](http://x) `code`", "Bold and link code"},
		{"raw html kept", "# α<sub>2</sub>δ", "α<sub>2</sub>δ"},
		{"closing hashes removed", "# Title ##", "Title"},
		{"heading inside code block ignored", "```\n# not a title\n```\n# Real", "Real"},
		{"empty heading skipped", "#\n# Named", "Named"},
		{"no heading", "plain text", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HeadingTitle(tt.markdown); got != tt.want {
				t.Errorf("HeadingTitle(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}
