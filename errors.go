package md2tex

import (
	"errors"

	"github.com/alnah/go-md2tex/internal/assets"
	"github.com/alnah/go-md2tex/internal/dateutil"
	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidTitlePage = errors.New("invalid title page")

	// Asset loading errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName

	// Pipeline and template errors.
	ErrInvalidVariant = pipeline.ErrInvalidVariant
	ErrTemplateParse  = pipeline.ErrTemplateParse
	ErrDocumentRender = pipeline.ErrDocumentRender

	// Title page errors.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat
)
