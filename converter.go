package md2tex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-md2tex/internal/assets"
	"github.com/alnah/go-md2tex/internal/dateutil"
	"github.com/alnah/go-md2tex/internal/logging"
	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Converter orchestrates the Markdown-to-LaTeX conversion.
// It is immutable after construction and safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	pipeline  *pipeline.Pipeline
	assembler pipeline.DocumentAssembler
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTemplate, WithAssetPath).
// Returns error if the pipeline options are invalid or the template cannot
// be loaded or parsed.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			template: DefaultTemplate,
			pipeline: pipeline.DefaultOptions(),
			logger:   logging.Discard(),
			now:      time.Now,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	p, err := pipeline.NewDefault(c.cfg.pipeline)
	if err != nil {
		return nil, err
	}
	c.pipeline = p

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	defer func() { _ = resolver.Close() }()

	name := c.cfg.template
	if name == "" {
		name = DefaultTemplate
	}
	content, err := resolver.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", name, err)
	}

	c.assembler, err = pipeline.NewDocumentAssembly(name, content)
	if err != nil {
		return nil, fmt.Errorf("initializing template %q: %w", name, err)
	}

	return c, nil
}

// Convert transforms the Markdown and wraps it in the document template.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Title.Validate(); err != nil {
		return nil, err
	}

	p := c.pipeline
	if c.cfg.logger.Enabled(ctx, slog.LevelDebug) {
		p = p.WithObserver(func(stage string, in, out int, elapsed time.Duration) {
			logging.Stage(ctx, c.cfg.logger, stage, in, out, elapsed)
		})
	}

	body, err := p.Run(ctx, input.Markdown)
	if err != nil {
		return nil, err
	}

	if input.BodyOnly {
		return &ConvertResult{Body: body, TeX: body}, nil
	}

	data, err := c.documentData(input, body)
	if err != nil {
		return nil, err
	}

	tex, err := c.assembler.Assemble(ctx, &data)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	return &ConvertResult{Body: body, TeX: tex}, nil
}

// documentData builds the escaped template values for input.
func (c *Converter) documentData(input Input, body string) (pipeline.DocumentData, error) {
	tp := input.Title.withDefaults()

	title := tp.Title
	if strings.EqualFold(strings.TrimSpace(title), TitleFromHeading) {
		title = HeadingTitle(input.Markdown)
		if title == "" {
			title = DefaultTitle
		}
	}

	date, err := c.resolveDate(tp.Date, tp.Language)
	if err != nil {
		return pipeline.DocumentData{}, err
	}

	data := pipeline.EscapeDocumentData(pipeline.DocumentData{
		Title:    title,
		Subtitle: tp.Subtitle,
		Tagline:  tp.Tagline,
		Header:   tp.Header,
		Language: tp.Language,
		Body:     body,
	})
	data.Date = date
	return data, nil
}

// resolveDate computes the date line. \today is kept as a command; any
// other result is escaped like the rest of the title page.
func (c *Converter) resolveDate(value, language string) (string, error) {
	date, err := dateutil.ResolveDate(value, c.cfg.now(), language)
	if err != nil {
		return "", err
	}
	if date == dateutil.Today {
		return date, nil
	}
	return pipeline.EscapeText(date), nil
}

// ConvertBody transforms Markdown into a LaTeX body with the default
// pipeline. It never fails: unrecognized constructs pass through.
func ConvertBody(markdown string) string {
	return pipeline.Convert(markdown)
}

// StageNames lists the pipeline stages of c in execution order.
func (c *Converter) StageNames() []string {
	return c.pipeline.Names()
}
