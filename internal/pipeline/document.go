package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
)

// Template delimiters. LaTeX is full of braces, so the Go default {{ }}
// would collide with ordinary groups like {{\Huge Title}}.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

// DocumentData holds the values rendered into a document template.
// String fields other than Body are expected to be LaTeX-safe already;
// see EscapeDocumentData.
type DocumentData struct {
	Title    string
	Subtitle string
	Tagline  string
	Header   string
	Date     string
	Language string
	Body     string
}

// EscapeDocumentData returns a copy of d with title-page fields escaped.
// Body and Date are left untouched: Body is already converted and Date may
// be a LaTeX command such as \today.
func EscapeDocumentData(d DocumentData) DocumentData {
	d.Title = EscapeText(d.Title)
	d.Subtitle = EscapeText(d.Subtitle)
	d.Tagline = EscapeText(d.Tagline)
	d.Header = EscapeText(d.Header)
	return d
}

// DocumentAssembler defines the contract for wrapping a body in a document.
type DocumentAssembler interface {
	Assemble(ctx context.Context, data *DocumentData) (string, error)
}

// DocumentAssembly renders a parsed LaTeX template.
type DocumentAssembly struct {
	tmpl *template.Template
}

// NewDocumentAssembly parses template content using << >> delimiters.
// Returns ErrTemplateParse if the template is invalid.
func NewDocumentAssembly(name, tmplContent string) (*DocumentAssembly, error) {
	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &DocumentAssembly{tmpl: tmpl}, nil
}

// Assemble renders the template with data.
func (a *DocumentAssembly) Assemble(ctx context.Context, data *DocumentData) (string, error) {
	if data == nil {
		data = &DocumentData{}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ DocumentAssembler = (*DocumentAssembly)(nil)
