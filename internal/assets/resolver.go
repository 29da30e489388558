package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Resolver looks templates up in an optional asset directory, then in the
// embedded set.
type Resolver struct {
	dir *Directory // nil without an asset directory
}

// NewResolver creates a Resolver. An empty assetPath uses only the embedded
// templates; otherwise assetPath must be a readable directory.
func NewResolver(assetPath string) (*Resolver, error) {
	r := &Resolver{}
	if assetPath == "" {
		return r, nil
	}

	dir, err := OpenDirectory(assetPath)
	if err != nil {
		return nil, err
	}
	r.dir = dir
	return r, nil
}

// Template loads name from the asset directory, falling back to the embedded
// set only when the directory does not have it.
func (r *Resolver) Template(name string) (string, error) {
	if r.dir == nil {
		return builtin.Template(name)
	}

	content, err := r.dir.Template(name)
	if errors.Is(err, ErrTemplateNotFound) {
		return builtin.Template(name)
	}
	return content, err
}

// Resolve loads a template given either a name or a file path.
func (r *Resolver) Resolve(nameOrPath string) (string, error) {
	if IsTemplatePath(nameOrPath) {
		return LoadTemplateFile(nameOrPath)
	}
	return r.Template(nameOrPath)
}

// Close releases the asset directory, if any.
func (r *Resolver) Close() error {
	if r.dir == nil {
		return nil
	}
	return r.dir.Close()
}

// LoadTemplateFile reads a template from an explicit file path.
// Returns ErrTemplateNotFound if the file does not exist.
func LoadTemplateFile(path string) (string, error) {
	content, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- user-provided template path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

var _ Source = (*Resolver)(nil)
