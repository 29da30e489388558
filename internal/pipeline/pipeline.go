package pipeline

import (
	"context"
	"fmt"
	"time"
)

// Variant selects one of the two supported substitution feature sets.
type Variant string

// Supported variants.
const (
	// VariantExtended converts Greek letters and <sub>/<sup> tags and
	// enables the math patch.
	VariantExtended Variant = "extended"
	// VariantBasic only escapes characters that break LaTeX compilation.
	VariantBasic Variant = "basic"
)

// Default table caption and label, shared by every converted table.
const (
	DefaultTableCaption = "Tabell: Automatisk konverterad tabell"
	DefaultTableLabel   = "tab:dynamic_table"
)

// TableOptions configures the table stage.
type TableOptions struct {
	Caption  string // empty = DefaultTableCaption
	Label    string // empty = DefaultTableLabel
	Numbered bool   // suffix labels with _1, _2, ... within a document
}

// Options configures which stages make up a pipeline.
type Options struct {
	Variant   Variant
	MathPatch bool
	Table     TableOptions
}

// DefaultOptions returns the extended variant with the math patch enabled.
func DefaultOptions() Options {
	return Options{
		Variant:   VariantExtended,
		MathPatch: true,
	}
}

// Validate checks that the variant is known. The empty variant means extended.
func (o Options) Validate() error {
	switch o.Variant {
	case "", VariantExtended, VariantBasic:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be basic or extended)", ErrInvalidVariant, o.Variant)
	}
}

// Stage is a single named whole-document rewrite.
type Stage struct {
	Name  string
	Apply func(text string) string
}

// StageObserver is notified after each stage completes.
type StageObserver func(stage string, bytesIn, bytesOut int, elapsed time.Duration)

// Pipeline applies its stages in order. It holds no mutable state and is
// safe for concurrent use.
type Pipeline struct {
	stages   []Stage
	observer StageObserver
}

// New creates a Pipeline from an explicit stage list.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// NewDefault creates the standard pipeline for the given options.
// Returns ErrInvalidVariant for unknown variants.
func NewDefault(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return New(DefaultStages(opts)...), nil
}

// WithObserver returns a copy of p that reports stage timings to fn.
func (p *Pipeline) WithObserver(fn StageObserver) *Pipeline {
	return &Pipeline{stages: p.stages, observer: fn}
}

// DefaultStages returns the ordered stage list for opts.
// Unknown variants are treated as extended; use Options.Validate first.
func DefaultStages(opts Options) []Stage {
	basic := opts.Variant == VariantBasic

	stages := []Stage{
		{Name: "line-endings", Apply: NormalizeLineEndings},
		{Name: "emphasis", Apply: StripEmphasis},
		{Name: "links", Apply: RemoveLinks},
		{Name: "empty-parens", Apply: RemoveEmptyParens},
		{Name: "nbsp", Apply: NormalizeNarrowNBSP},
		{Name: "headings", Apply: ConvertHeadings},
		{Name: "list-items", Apply: ConvertListItems},
	}

	if basic {
		stages = append(stages, Stage{Name: "symbols", Apply: SubstituteBasicSymbols})
	} else {
		stages = append(stages, Stage{Name: "symbols", Apply: SubstituteSymbols})
		if opts.MathPatch {
			stages = append(stages, Stage{Name: "math-patch", Apply: PatchAlphaDelta})
		}
	}

	return append(stages,
		Stage{Name: "punctuation", Apply: TrimSpaceBeforePunctuation},
		TableStage(opts.Table),
	)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run folds text through every stage. The context is checked between
// stages; on cancellation the context error is returned.
func (p *Pipeline) Run(ctx context.Context, text string) (string, error) {
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		start := time.Now()
		out := s.Apply(text)
		if p.observer != nil {
			p.observer(s.Name, len(text), len(out), time.Since(start))
		}
		text = out
	}
	return text, nil
}

// Apply runs every stage without cancellation.
func (p *Pipeline) Apply(text string) string {
	for _, s := range p.stages {
		text = s.Apply(text)
	}
	return text
}

var defaultPipeline = New(DefaultStages(DefaultOptions())...)

// Convert transforms Markdown source text into a LaTeX body using the
// default options. It never fails.
func Convert(text string) string {
	return defaultPipeline.Apply(text)
}
