package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-md2tex/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file returns true", testFile, true},
		{"directory returns false", testDir, false},
		{"nonexistent path returns false", filepath.Join(tempDir, "nonexistent"), false},
		{"empty path returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name returns false", "report", false},
		{"relative path with dot-slash returns true", "./custom.tex", true},
		{"parent path returns true", "../shared/config.yaml", true},
		{"absolute Unix path returns true", "/absolute/path.tex", true},
		{"Windows path with backslash returns true", "C:\\windows\\path.tex", true},
		{"hyphenated name returns false", "my-report", false},
		{"empty string returns false", "", false},
		{"name with dots but no slash returns false", "name.with.dots", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdown / TestReplaceExt - Extension helpers
// ---------------------------------------------------------------------------

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"rapport.md", true},
		{"notes.markdown", true},
		{"UPPER.MD", true},
		{"dir/file.md", true},
		{"rapport.tex", false},
		{"md", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"rapport.md", ".tex", "rapport.tex"},
		{"dir/notes.markdown", ".tex", "dir/notes.tex"},
		{"noext", ".tex", "noext.tex"},
		{"archive.tar.md", ".tex", "archive.tar.tex"},
	}

	for _, tt := range tests {
		if got := fileutil.ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.tex")
		if err := fileutil.WriteFileAtomic(path, []byte("content"), 0644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "content" {
			t.Errorf("content = %q, want %q", got, "content")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.tex")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "out.tex"), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("applies permissions", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("permission bits not supported")
		}

		path := filepath.Join(t.TempDir(), "out.tex")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.tex")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0644); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("empty path returns ErrEmptyPath", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.WriteFileAtomic("", []byte("x"), 0644); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})
}
