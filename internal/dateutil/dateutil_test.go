package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateFormat_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{"empty format", ""},
		{"unclosed bracket", "YYYY [Date"},
		{"too long", "YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDateFormat(tt.format)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDateFormat(%q) error = %v, want ErrInvalidDateFormat", tt.format, err)
			}
		})
	}
}

func TestLayout_Format(t *testing.T) {
	t.Parallel()

	// 2024-03-05: single-digit day and month exercise padding.
	fixed := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		format   string
		language string
		want     string
	}{
		{"four digit year", "YYYY", "english", "2024"},
		{"two digit year", "YY", "english", "24"},
		{"padded month and day", "MM/DD", "english", "03/05"},
		{"unpadded month and day", "M/D", "english", "3/5"},
		{"long month english", "MMMM D, YYYY", "english", "March 5, 2024"},
		{"short month english", "MMM YYYY", "english", "Mar 2024"},
		{"long month swedish", "D MMMM YYYY", "swedish", "5 mars 2024"},
		{"language is case-insensitive", "MMMM", "Swedish", "mars"},
		{"unknown language falls back to english", "MMMM", "klingon", "March"},
		{"bracket literal preserved", "[Datum:] YYYY", "swedish", "Datum: 2024"},
		{"literal characters preserved", "DD.MM.YYYY", "english", "05.03.2024"},
		{"multibyte short month", "MMM", "ngerman", "Mär"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got := layout.Format(fixed, tt.language); got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.format, tt.language, got, tt.want)
			}
		})
	}
}

func TestIsAuto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"auto", true},
		{"AUTO", true},
		{"auto:iso", true},
		{"", false},
		{"today", false},
		{"automatic", false},
		{"2024-01-01", false},
	}

	for _, tt := range tests {
		if got := IsAuto(tt.value); got != tt.want {
			t.Errorf("IsAuto(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	// Fixed time for deterministic tests: 2024-03-15
	fixedTime := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    string
		language string
		want     string
		wantErr  error
	}{
		{
			name:  "empty uses LaTeX today",
			value: "",
			want:  `\today`,
		},
		{
			name:  "today keyword uses LaTeX today",
			value: "Today",
			want:  `\today`,
		},
		{
			name:  "literal date passthrough",
			value: "2024-01-01",
			want:  "2024-01-01",
		},
		{
			name:  "arbitrary text passthrough",
			value: "Q1 2024",
			want:  "Q1 2024",
		},
		{
			name:  "auto uses default ISO format",
			value: "auto",
			want:  "2024-03-15",
		},
		{
			name:  "AUTO is case insensitive",
			value: "AUTO",
			want:  "2024-03-15",
		},
		{
			name:  "auto:DD/MM/YYYY European format",
			value: "auto:DD/MM/YYYY",
			want:  "15/03/2024",
		},
		{
			name:     "auto:long preset in swedish",
			value:    "auto:long",
			language: "swedish",
			want:     "15 mars 2024",
		},
		{
			name:     "auto:long preset in english",
			value:    "auto:LONG",
			language: "english",
			want:     "15 March 2024",
		},
		{
			name:  "auto:us preset",
			value: "auto:us",
			want:  "03/15/2024",
		},
		{
			name:    "auto: with empty format",
			value:   "auto:",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "auto without colon is invalid",
			value:   "automatic",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "auto with unclosed bracket",
			value:   "auto:[YYYY",
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime, tt.language)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
