package pipeline

import (
	"regexp"
	"strings"
)

// substitution is a literal source string and its LaTeX replacement.
type substitution struct {
	from string
	to   string
}

// passthrough entries match text that is already escaped, or subscript output
// from an earlier pass, so the substitution stage is idempotent. They must
// precede the entries they guard: strings.Replacer prefers earlier arguments
// at the same position.
var passthrough = []substitution{
	{`\%`, `\%`},
	{`\_`, `\_`},
	{"_{", "_{"},
}

// basicSubstitutions escapes characters that break compilation.
var basicSubstitutions = []substitution{
	{"%", `\%`},
	{"−", "-"}, // minus sign
	{"≥", `$\ge$`},
	{"≤", `$\le$`},
	{"_", `\_`},
	{"【", "["},
	{"】", "]"},
}

// extendedSubstitutions adds Greek letters and sub/superscript tags.
// The results are math fragments; they are not wrapped in $...$ here.
var extendedSubstitutions = []substitution{
	{"α", `\alpha`},
	{"β", `\beta`},
	{"γ", `\gamma`},
	{"δ", `\delta`},
	{"Δ", `\Delta`},
	{"<sub>", "_{"},
	{"</sub>", "}"},
	{"<sup>", "^{"},
	{"</sup>", "}"},
}

var (
	basicReplacer    = newReplacer(passthrough, basicSubstitutions)
	extendedReplacer = newReplacer(passthrough, basicSubstitutions, extendedSubstitutions)

	// \alpha_{N}\delta plus a trailing suffix such as "-subunits".
	alphaDeltaPattern = regexp.MustCompile(`(\\alpha_\{\d+\}\\delta)([^\s)]*)`)
)

func newReplacer(tables ...[]substitution) *strings.Replacer {
	var pairs []string
	for _, table := range tables {
		for _, s := range table {
			pairs = append(pairs, s.from, s.to)
		}
	}
	return strings.NewReplacer(pairs...)
}

// SubstituteSymbols applies the extended substitution table.
func SubstituteSymbols(text string) string {
	return extendedReplacer.Replace(text)
}

// SubstituteBasicSymbols applies only the basic substitution table.
func SubstituteBasicSymbols(text string) string {
	return basicReplacer.Replace(text)
}

// textReplacer escapes plain text for text mode. Every LaTeX special
// character is escaped, and math fragments get their own $...$.
var textReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"&", `\&`,
	"#", `\#`,
	"$", `\$`,
	"%", `\%`,
	"_", `\_`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
	"−", "-",
	"≥", `$\ge$`,
	"≤", `$\le$`,
	"【", "[",
	"】", "]",
	"α", `$\alpha$`,
	"β", `$\beta$`,
	"γ", `$\gamma$`,
	"δ", `$\delta$`,
	"Δ", `$\Delta$`,
	"<sub>", `\textsubscript{`,
	"</sub>", "}",
	"<sup>", `\textsuperscript{`,
	"</sup>", "}",
)

// EscapeText makes a plain string (a title, a subtitle) safe to place in a
// LaTeX document in text mode. Unlike the body stages it escapes every
// special character, since title-page values are never LaTeX source.
func EscapeText(text string) string {
	return textReplacer.Replace(NormalizeNarrowNBSP(text))
}

// PatchAlphaDelta wraps \alpha_{N}\delta in inline math, leaving any
// trailing suffix outside. This is a narrow fix for one compound and not
// a general math-mode inference.
func PatchAlphaDelta(text string) string {
	return alphaDeltaPattern.ReplaceAllString(text, "$$${1}$$${2}")
}
