// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForLaTeXEngine returns hints when no LaTeX engine is on PATH.
// The converter itself does not need one; compiling its output does.
func ForLaTeXEngine() string {
	var hints []string

	if IsInContainer() {
		hints = append(hints, "apt-get install texlive-latex-recommended texlive-lang-european")
	} else {
		hints = append(hints, "install TeX Live or MiKTeX to compile the .tex output")
	}

	if os.Getenv("PATH") == "" {
		hints = append(hints, "PATH is empty")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (under go-md2tex/) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2tex/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints for a missing Markdown input.
func ForInputNotFound() string {
	return format("default input is rapport.md in the current directory; use -i FILE or pass a directory")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to a .tex file")
}

// ForVariant returns hints for an unknown pipeline variant.
func ForVariant() string {
	return format("use --variant extended or --variant basic")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
