package main

// Notes:
// - exitCodeFor: every sentinel the CLI can surface is mapped, plus wrapped
//   forms to verify the errors.Is chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write tex", ErrWriteTeX, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"wrapped read markdown", fmt.Errorf("%w: %w", ErrReadMarkdown, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"stdout multiple", ErrStdoutMultiple, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"template not found", md2tex.ErrTemplateNotFound, ExitUsage},
		{"invalid asset name", md2tex.ErrInvalidAssetName, ExitUsage},
		{"invalid asset path", md2tex.ErrInvalidAssetPath, ExitUsage},
		{"invalid variant", md2tex.ErrInvalidVariant, ExitUsage},
		{"template parse", md2tex.ErrTemplateParse, ExitUsage},
		{"invalid date format", md2tex.ErrInvalidDateFormat, ExitUsage},
		{"invalid title page", md2tex.ErrInvalidTitlePage, ExitUsage},
		{"template not found wins over not exist", fmt.Errorf("%w: %w", md2tex.ErrTemplateNotFound, os.ErrNotExist), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"batch summary", fmt.Errorf("2 of 3 conversion(s) failed: %w", errors.New("boom")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO}
	seen := map[int]bool{}
	for _, c := range codes {
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0-125", c)
		}
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
}
