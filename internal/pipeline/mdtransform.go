package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for the inline stages.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// **bold** must be stripped before *italic*
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)

	// [[label](url)] must be removed before [label](url). Both span newlines.
	wrappedLinkPattern = regexp.MustCompile(`(?s)\[\[.*?\]\(.*?\)\]`)
	linkPattern        = regexp.MustCompile(`(?s)\[.*?\]\(.*?\)`)

	emptyParensPattern = regexp.MustCompile(`\(\s*\)`)

	spaceBeforePunctuation = regexp.MustCompile(`\s+([.,])`)
)

// narrowNBSP is U+202F NARROW NO-BREAK SPACE.
const narrowNBSP = "\u202f"

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// StripEmphasis removes **bold** and *italic* markers, keeping the inner text.
func StripEmphasis(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	return italicPattern.ReplaceAllString(text, "$1")
}

// RemoveLinks deletes Markdown links, label included.
func RemoveLinks(text string) string {
	text = wrappedLinkPattern.ReplaceAllString(text, "")
	return linkPattern.ReplaceAllString(text, "")
}

// RemoveEmptyParens deletes "()" left behind by link removal. Passes repeat
// until nothing changes, so nested pairs such as "(( ))" go as well.
func RemoveEmptyParens(text string) string {
	for {
		out := emptyParensPattern.ReplaceAllString(text, "")
		if out == text {
			return out
		}
		text = out
	}
}

// NormalizeNarrowNBSP replaces narrow no-break spaces with plain spaces.
func NormalizeNarrowNBSP(text string) string {
	return strings.ReplaceAll(text, narrowNBSP, " ")
}

// TrimSpaceBeforePunctuation removes whitespace runs before '.' and ','.
func TrimSpaceBeforePunctuation(text string) string {
	return spaceBeforePunctuation.ReplaceAllString(text, "$1")
}
