// Package md2tex converts Markdown reports into compilable LaTeX documents.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2tex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2tex.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    &md2tex.TitlePage{Title: "Report"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("rapport.tex", []byte(result.TeX), 0o644)
//
// The result contains both the complete document (result.TeX) and the
// converted body (result.Body). Use Input.BodyOnly to skip the template.
// ConvertBody runs the transformation alone with default options.
//
// # Conversion Pipeline
//
// The body is produced by an ordered list of whole-text rewrites:
//
//  1. Line endings normalized to \n
//  2. Bold/italic markers and links removed, empty parentheses dropped
//  3. Narrow no-break spaces replaced by plain spaces
//  4. Headings to \chapter*, \section*, \subsection*, \subsubsection*
//  5. "- Label: body" items to \subsection*{Label} followed by the body
//  6. Special characters escaped; Greek letters and <sub>/<sup> converted
//  7. Optional math-mode patch for \alpha_{N}\delta compounds
//  8. Spaces before , and . removed
//  9. Pipe tables to tabular environments
//
// The pipeline does not parse Markdown. Constructs it does not recognize
// pass through unchanged, and the conversion never fails.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2tex.NewConverter(
//	    md2tex.WithTemplate("extended"),
//	    md2tex.WithAssetPath("/path/to/custom/assets"),
//	    md2tex.WithPipelineOptions(md2tex.PipelineOptions{Variant: md2tex.VariantBasic}),
//	)
//
// Templates use << >> as action delimiters so that LaTeX braces need no
// escaping. A custom template receives Title, Subtitle, Tagline, Header,
// Date, Language and Body.
//
// # Concurrency
//
// A Converter is immutable after construction and may be shared by any
// number of goroutines.
//
// # Error Handling
//
// Errors wrap sentinels that can be checked with errors.Is:
//
//	if errors.Is(err, md2tex.ErrTemplateNotFound) {
//	    // handle missing template
//	}
package md2tex
