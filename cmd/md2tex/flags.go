package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config      string
	printConfig bool
	quiet       bool
	verbose     bool
	logLevel    string
	logFormat   string
}

// documentFlags holds title page flags.
type documentFlags struct {
	subtitle    string
	tagline     string
	header      string
	date        string
	language    string
	titleFromH1 bool
}

// templateFlags holds document template flags.
type templateFlags struct {
	template  string // Name or path of the template
	assetPath string // Override asset directory
}

// pipelineFlags holds transformation flags.
type pipelineFlags struct {
	variant      string
	noMathPatch  bool
	numberTables bool
	caption      string
	label        string
	bodyOnly     bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	input    string
	output   string
	stdout   bool
	workers  int
	document documentFlags
	template templateFlags
	pipeline pipelineFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show sizes, timing and stage logs")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
}

// addDocumentFlags adds title page flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.subtitle, "subtitle", "", "title page subtitle")
	fs.StringVar(&f.tagline, "tagline", "", "title page tagline")
	fs.StringVar(&f.header, "header", "", "running header text (default: subtitle)")
	fs.StringVar(&f.date, "date", "", "date: \"today\", \"auto\", \"auto:FORMAT\", or literal")
	fs.StringVar(&f.language, "language", "", "babel language (default: swedish)")
	fs.BoolVar(&f.titleFromH1, "title-from-h1", false, "use the first level-1 heading as title")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVar(&f.template, "template", "", "template name or .tex file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addPipelineFlags adds transformation flags to a FlagSet.
func addPipelineFlags(fs *flag.FlagSet, f *pipelineFlags) {
	fs.StringVar(&f.variant, "variant", "", "substitution variant: extended, basic")
	fs.BoolVar(&f.noMathPatch, "no-math-patch", false, "disable the alpha/delta math-mode patch")
	fs.BoolVar(&f.numberTables, "number-tables", false, "give each table a distinct label")
	fs.StringVar(&f.caption, "caption", "", "table caption")
	fs.StringVar(&f.label, "label", "", "table label")
	fs.BoolVar(&f.bodyOnly, "body-only", false, "write the converted body without the template")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Positional args are the title words.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "markdown file or directory (default: rapport.md)")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.stdout, "stdout", false, "write the document to standard output")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addTemplateFlags(fs, &f.template)
	addPipelineFlags(fs, &f.pipeline)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
