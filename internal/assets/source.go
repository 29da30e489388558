package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// DefaultTemplateName is the name of the built-in report template.
const DefaultTemplateName = "report"

// templateExt is the file extension of document templates.
const templateExt = ".tex"

// Source loads document templates by name (without the .tex extension).
type Source interface {
	// Template returns ErrTemplateNotFound if name does not exist and
	// ErrInvalidAssetName if name is not a plain template name.
	Template(name string) (string, error)
}

// fsSource serves {name}.tex files from the root of an fs.FS.
type fsSource struct {
	fsys fs.FS
}

// Template reads name+".tex" from the source filesystem.
func (s fsSource) Template(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(s.fsys, name+templateExt)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	default:
		return "", fmt.Errorf("%w %q: %v", ErrAssetRead, name, err)
	}
}

// names lists the templates at the root of the source filesystem, sorted.
func (s fsSource) names() []string {
	matches, err := fs.Glob(s.fsys, "*"+templateExt)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, templateExt))
	}
	return names
}

// ValidateAssetName accepts names made of ASCII letters, digits, '-' and '_'.
// Anything else, including separators and dots, could select a file other
// than {name}.tex.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

// IsTemplatePath reports whether value names a template file rather than
// a template name: it contains a path separator or ends in .tex.
func IsTemplatePath(value string) bool {
	return strings.ContainsAny(value, `/\`) || strings.HasSuffix(strings.ToLower(value), templateExt)
}
