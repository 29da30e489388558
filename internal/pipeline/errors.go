package pipeline

import "errors"

// Sentinel errors for pipeline construction and document assembly.
var (
	ErrInvalidVariant = errors.New("invalid pipeline variant")
	ErrTemplateParse  = errors.New("document template parsing failed")
	ErrDocumentRender = errors.New("document template rendering failed")
)
