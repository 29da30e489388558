// Package pipeline implements the Markdown-to-LaTeX transformation pipeline.
//
// The transformer is an ordered list of stages, each a whole-document
// string rewrite, folded left to right:
//   - line ending normalization
//   - emphasis stripping, link removal, empty parenthesis cleanup
//   - narrow no-break space normalization
//   - heading and "- Label: body" item conversion to sectioning commands
//   - special character and symbol substitution (plus an optional math patch)
//   - whitespace-before-punctuation cleanup
//   - pipe table conversion to tabular environments
//
// Later stages depend on the output shape of earlier ones, so the order is
// fixed. Every stage is total: malformed Markdown is left as literal text.
//
// The package also assembles the final document by rendering a LaTeX
// template around the converted body (see DocumentAssembly).
package pipeline
