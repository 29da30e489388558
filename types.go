package md2tex

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Title page defaults.
const (
	DefaultTitle    = "Rapportens titel"
	DefaultSubtitle = "ChatGPT Deep Research"
	DefaultTagline  = "Underlag framtagen av AI"
	DefaultLanguage = "swedish"
)

// TitleFromHeading is the title value that selects the first level-1
// heading of the document.
const TitleFromHeading = "auto"

// Template names shipped with the library.
const (
	DefaultTemplate  = "report"
	ExtendedTemplate = "extended"
)

// maxLanguageLength bounds the babel option.
const maxLanguageLength = 30

// Input contains conversion parameters.
type Input struct {
	Markdown string     // Markdown content
	Title    *TitlePage // Title page values (nil = defaults)
	BodyOnly bool       // Skip template assembly; TeX equals Body
}

// TitlePage configures the title page and running header.
// Empty fields fall back to the package defaults.
type TitlePage struct {
	Title    string // "auto" = first level-1 heading
	Subtitle string
	Tagline  string
	Header   string // Left running header; empty = Subtitle
	Date     string // "" or "today" = \today; "auto", "auto:FORMAT" or literal
	Language string // babel language, e.g. "swedish"
}

// Validate checks that title page settings are valid.
// Returns nil if p is nil (nil means defaults).
func (p *TitlePage) Validate() error {
	if p == nil || p.Language == "" {
		return nil
	}
	if len(p.Language) > maxLanguageLength {
		return fmt.Errorf("%w: language exceeds %d characters", ErrInvalidTitlePage, maxLanguageLength)
	}
	for _, r := range p.Language {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return fmt.Errorf("%w: language %q (letters only)", ErrInvalidTitlePage, p.Language)
		}
	}
	return nil
}

// withDefaults returns a copy with empty fields filled in.
func (p *TitlePage) withDefaults() TitlePage {
	var tp TitlePage
	if p != nil {
		tp = *p
	}
	if strings.TrimSpace(tp.Title) == "" {
		tp.Title = DefaultTitle
	}
	if tp.Subtitle == "" {
		tp.Subtitle = DefaultSubtitle
	}
	if tp.Tagline == "" {
		tp.Tagline = DefaultTagline
	}
	if tp.Header == "" {
		tp.Header = tp.Subtitle
	}
	if tp.Language == "" {
		tp.Language = DefaultLanguage
	}
	return tp
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	Body string // Converted LaTeX body
	TeX  string // Complete document; equals Body when Input.BodyOnly is set
}

// PipelineOptions selects the transformation stages.
type PipelineOptions = pipeline.Options

// TableOptions configures table captions and labels.
type TableOptions = pipeline.TableOptions

// Variant selects the substitution feature set.
type Variant = pipeline.Variant

// Supported variants.
const (
	VariantExtended = pipeline.VariantExtended
	VariantBasic    = pipeline.VariantBasic
)

// DefaultPipelineOptions returns the extended variant with the math patch.
func DefaultPipelineOptions() PipelineOptions {
	return pipeline.DefaultOptions()
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	template  string
	assetPath string
	pipeline  pipeline.Options
	logger    *slog.Logger
	now       func() time.Time
}

// WithTemplate selects the document template by name ("report",
// "extended") or by path to a .tex file.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.template = nameOrPath
	}
}

// WithAssetPath sets a directory whose templates/{name}.tex files take
// precedence over the embedded templates.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithPipelineOptions configures the Markdown transformation stages.
func WithPipelineOptions(opts PipelineOptions) Option {
	return func(c *Converter) {
		c.cfg.pipeline = opts
	}
}

// WithLogger sets the logger used for stage timings at debug level.
// Panics if logger is nil (programmer error).
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("md2tex: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}

// withClock overrides the time source used for computed dates.
func withClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}
