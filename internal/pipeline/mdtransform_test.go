package pipeline

import "testing"

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2\r\n",
			expected: "line1\nline2\n",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2",
			expected: "line1\nline2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "**bold** text",
			expected: "bold text",
		},
		{
			name:     "italic",
			input:    "an *italic* word",
			expected: "an italic word",
		},
		{
			name:     "bold and italic on one line",
			input:    "*it* and **b**",
			expected: "it and b",
		},
		{
			name:     "inner text kept verbatim",
			input:    "**50% of x_y**",
			expected: "50% of x_y",
		},
		{
			name:     "unbalanced marker left as literal",
			input:    "a ** b",
			expected: "a ** b",
		},
		{
			name:     "does not span lines",
			input:    "**a\nb**",
			expected: "**a\nb**",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := StripEmphasis(tt.input)
			if got != tt.expected {
				t.Errorf("StripEmphasis(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "standard link removed with label",
			input:    "see [docs](http://example.com) now",
			expected: "see  now",
		},
		{
			name:     "double bracket link removed",
			input:    "claim [[1](http://example.com/a)]",
			expected: "claim ",
		},
		{
			name:     "link wrapping over lines",
			input:    "x [a\nb](http://example.com/\nlong) y",
			expected: "x  y",
		},
		{
			name:     "leftmost match wins",
			input:    "[a] and [b](u)",
			expected: "",
		},
		{
			name:     "bracket without url untouched",
			input:    "array[0] and [note]",
			expected: "array[0] and [note]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveLinks(tt.input)
			if got != tt.expected {
				t.Errorf("RemoveLinks(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRemoveEmptyParens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty pair", "text ()", "text "},
		{"pair with spaces", "f( )", "f"},
		{"pair with newline", "f(\n)", "f"},
		{"non-empty pair kept", "(x)", "(x)"},
		{"nested empty pairs", "a (( )) b", "a  b"},
		{"deeply nested", "(((\t)))", ""},
		{"nested around text kept", "((x))", "((x))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RemoveEmptyParens(tt.input)
			if got != tt.expected {
				t.Errorf("RemoveEmptyParens(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeNarrowNBSP(t *testing.T) {
	t.Parallel()

	if got := NormalizeNarrowNBSP("10\u202f000 kr"); got != "10 000 kr" {
		t.Errorf("NormalizeNarrowNBSP() = %q, want %q", got, "10 000 kr")
	}
	if got := NormalizeNarrowNBSP(""); got != "" {
		t.Errorf("NormalizeNarrowNBSP(\"\") = %q, want empty", got)
	}
	// Regular no-break space is not touched.
	if got := NormalizeNarrowNBSP("a\u00a0b"); got != "a\u00a0b" {
		t.Errorf("NormalizeNarrowNBSP() changed U+00A0: %q", got)
	}
}

func TestTrimSpaceBeforePunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"space before comma and period", "word , next .", "word, next."},
		{"multiple spaces", "end   .", "end."},
		{"newline before period", "a\n.", "a."},
		{"other punctuation untouched", "why ?", "why ?"},
		{"no whitespace", "a.b,c", "a.b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TrimSpaceBeforePunctuation(tt.input)
			if got != tt.expected {
				t.Errorf("TrimSpaceBeforePunctuation(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
