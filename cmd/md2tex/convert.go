package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/hints"
	"github.com/alnah/go-md2tex/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrStdoutMultiple = errors.New("--stdout needs a single input file")
)

// DefaultInput is converted when no input is given by flag, env or config.
const DefaultInput = "rapport.md"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, titleWords, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, titleWords, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flags.common.printConfig {
		out, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	logger, err := newLogger(env.Stderr, flags.common)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(flags.input, cfg)
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %w%s", ErrReadMarkdown, err, hints.ForInputNotFound())
		}
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	params := &conversionParams{
		title:    titlePage(cfg),
		bodyOnly: flags.pipeline.bodyOnly,
		logger:   logger,
		now:      env.Now,
	}

	if flags.stdout {
		if len(files) != 1 {
			return fmt.Errorf("%w: found %d files in %s", ErrStdoutMultiple, len(files), inputPath)
		}
		return convertToWriter(ctx, conv, files[0].InputPath, params, env.Stdout)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	results := convertBatch(ctx, conv, files, params, workers)

	return reportResults(results, flags.common.quiet, flags.common.verbose, env)
}

// loadConfig loads the config named by flag or MD2TEX_CONFIG, or returns
// defaults when neither is set.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configCandidates(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configCandidates returns the user config paths searched for name.
func configCandidates(name string) []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-md2tex", name+".yaml")}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Title words, when present, replace the configured title.
func mergeFlags(flags *convertFlags, titleWords []string, cfg *config.Config) {
	// Document flags
	if flags.document.titleFromH1 {
		cfg.Document.Title = md2tex.TitleFromHeading
	}
	if len(titleWords) > 0 {
		cfg.Document.Title = strings.Join(titleWords, " ")
	}
	if flags.document.subtitle != "" {
		cfg.Document.Subtitle = flags.document.subtitle
	}
	if flags.document.tagline != "" {
		cfg.Document.Tagline = flags.document.tagline
	}
	if flags.document.header != "" {
		cfg.Document.Header = flags.document.header
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.document.language != "" {
		cfg.Document.Language = flags.document.language
	}

	// Template flags
	if flags.template.template != "" {
		cfg.Template.Name = flags.template.template
	}
	if flags.template.assetPath != "" {
		cfg.Template.AssetPath = flags.template.assetPath
	}

	// Pipeline flags
	if flags.pipeline.variant != "" {
		cfg.Pipeline.Variant = flags.pipeline.variant
	}
	if flags.pipeline.noMathPatch {
		disabled := false
		cfg.Pipeline.MathPatch = &disabled
	}
	if flags.pipeline.numberTables {
		cfg.Pipeline.Tables.Numbered = true
	}
	if flags.pipeline.caption != "" {
		cfg.Pipeline.Tables.Caption = flags.pipeline.caption
	}
	if flags.pipeline.label != "" {
		cfg.Pipeline.Tables.Label = flags.pipeline.label
	}
}

// newLogger builds the stderr logger. The level is --log-level, or warn when
// unset; --quiet and --verbose override it.
func newLogger(w io.Writer, f commonFlags) (*slog.Logger, error) {
	format, err := logging.ParseFormat(f.logFormat)
	if err != nil {
		return nil, err
	}

	level := logging.LevelWarn
	if f.logLevel != "" {
		if level, err = logging.ParseLevel(f.logLevel); err != nil {
			return nil, err
		}
	}
	switch {
	case f.quiet:
		level = logging.LevelError
	case f.verbose:
		level = logging.LevelDebug
	}

	return logging.New(w, level, format), nil
}

// newConverter creates the library converter for cfg, adding hints to
// template and variant errors.
func newConverter(cfg *config.Config, logger *slog.Logger) (*md2tex.Converter, error) {
	conv, err := md2tex.NewConverter(
		md2tex.WithTemplate(cfg.Template.Name),
		md2tex.WithAssetPath(cfg.Template.AssetPath),
		md2tex.WithPipelineOptions(cfg.PipelineOptions()),
		md2tex.WithLogger(logger),
	)
	if err != nil {
		switch {
		case errors.Is(err, md2tex.ErrTemplateNotFound):
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(md2tex.TemplateNames()))
		case errors.Is(err, md2tex.ErrInvalidVariant):
			return nil, fmt.Errorf("%w%s", err, hints.ForVariant())
		}
		return nil, err
	}
	return conv, nil
}

// titlePage maps the document section of cfg to library title page values.
func titlePage(cfg *config.Config) *md2tex.TitlePage {
	return &md2tex.TitlePage{
		Title:    cfg.Document.Title,
		Subtitle: cfg.Document.Subtitle,
		Tagline:  cfg.Document.Tagline,
		Header:   cfg.Document.Header,
		Date:     cfg.Document.Date,
		Language: cfg.Document.Language,
	}
}

// resolveInputPath determines the input path from flag, config or default.
func resolveInputPath(flagInput string, cfg *config.Config) string {
	if flagInput != "" {
		return flagInput
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir
	}
	return DefaultInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveWorkers returns the worker count: flag, then env, then GOMAXPROCS.
func resolveWorkers(flagWorkers, envWorkers int) int {
	n := flagWorkers
	if n == 0 {
		n = envWorkers
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(n, MaxWorkers)
}
