package assets

import "errors"

// Sentinel errors for template loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("failed to read template")
)
