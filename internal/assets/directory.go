package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Directory serves templates from {base}/templates inside an os.Root, so
// lookups cannot leave base through "..", absolute paths or symlinks.
// Close releases the underlying directory handle.
type Directory struct {
	root *os.Root
	fsSource
}

// OpenDirectory opens base as a template directory.
// Returns ErrInvalidBasePath if base is empty or not a readable directory.
// A base without a templates subdirectory is valid and serves nothing.
func OpenDirectory(base string) (*Directory, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	sub, err := fs.Sub(root.FS(), "templates")
	if err != nil {
		_ = root.Close()
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &Directory{root: root, fsSource: fsSource{fsys: sub}}, nil
}

// Close releases the directory handle.
func (d *Directory) Close() error {
	return d.root.Close()
}
