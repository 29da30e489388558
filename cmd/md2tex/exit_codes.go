package main

import (
	"errors"
	"os"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
)

// Exit codes for md2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// Usage errors are checked first: a missing template or config file is a
// usage problem even though the filesystem reported it.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrStdoutMultiple) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2tex.ErrTemplateNotFound) ||
		errors.Is(err, md2tex.ErrInvalidAssetName) ||
		errors.Is(err, md2tex.ErrInvalidAssetPath) ||
		errors.Is(err, md2tex.ErrInvalidVariant) ||
		errors.Is(err, md2tex.ErrTemplateParse) ||
		errors.Is(err, md2tex.ErrDocumentRender) ||
		errors.Is(err, md2tex.ErrInvalidDateFormat) ||
		errors.Is(err, md2tex.ErrInvalidTitlePage) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteTeX) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	return ExitGeneral
}
