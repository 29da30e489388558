package pipeline

import (
	"regexp"
	"strings"
)

var (
	// One or more '#' as the first non-blank content of a line, then the
	// title. Whitespace between the marker and the title is optional.
	headingPattern = regexp.MustCompile(`(?m)^[ \t]*(#+)[ \t]*(.+)`)

	// "- Label: body". The label stops at the first colon; body may be empty.
	listItemPattern = regexp.MustCompile(`(?m)^[ \t]*-[ \t]*(.+?):[ \t]*(.*)`)
)

// headingCommands maps heading depth (1-based) to the starred sectioning
// command. Depths beyond the last entry use the last entry.
var headingCommands = []string{
	`\chapter*`,
	`\section*`,
	`\subsection*`,
	`\subsubsection*`,
}

// headingCommand returns the unnumbered sectioning command for a depth.
func headingCommand(depth int) string {
	if depth > len(headingCommands) {
		depth = len(headingCommands)
	}
	return headingCommands[depth-1]
}

// ConvertHeadings rewrites '#' heading lines into sectioning commands.
func ConvertHeadings(text string) string {
	return headingPattern.ReplaceAllStringFunc(text, func(line string) string {
		m := headingPattern.FindStringSubmatch(line)
		title := strings.TrimSpace(m[2])
		return headingCommand(len(m[1])) + "{" + title + "}"
	})
}

// ConvertListItems rewrites "- Label: body" lines into a subsection titled
// Label followed by a line holding body.
func ConvertListItems(text string) string {
	return listItemPattern.ReplaceAllString(text, `\subsection*{${1}}`+"\n${2}")
}
