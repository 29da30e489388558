// Package dateutil resolves the title page date: the LaTeX \today command
// by default, or a date rendered from a user-friendly format in the
// document language.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// Today is the LaTeX command that prints the compile date in the babel
// language. It is the date used when none is configured.
const Today = `\today`

// DefaultLanguage is the language used for month names when none is given
// or the given one is unknown.
const DefaultLanguage = "english"

// tokenKind identifies a date component.
type tokenKind int

const (
	literal tokenKind = iota
	year4
	year2
	monthLong
	monthShort
	month2
	month1
	day2
	day1
)

// dateTokens maps user-friendly tokens to date components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	kind  tokenKind
}{
	{"YYYY", year4},
	{"MMMM", monthLong},
	{"MMM", monthShort},
	{"YY", year2},
	{"MM", month2},
	{"DD", day2},
	{"M", month1},
	{"D", day1},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "D MMMM YYYY",
}

// monthNames holds full month names per babel language.
var monthNames = map[string][12]string{
	"english": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"swedish": {"januari", "februari", "mars", "april", "maj", "juni",
		"juli", "augusti", "september", "oktober", "november", "december"},
	"norsk": {"januar", "februar", "mars", "april", "mai", "juni",
		"juli", "august", "september", "oktober", "november", "desember"},
	"danish": {"januar", "februar", "marts", "april", "maj", "juni",
		"juli", "august", "september", "oktober", "november", "december"},
	"ngerman": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	"french": {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
}

// Segment is one parsed piece of a date format: a component or literal text.
type Segment struct {
	kind tokenKind
	text string
}

// Layout is a parsed date format.
type Layout []Segment

// ParseDateFormat parses a user-friendly format string.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (Layout, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout Layout
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			layout = append(layout, Segment{kind: literal, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			lit.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				flush()
				layout = append(layout, Segment{kind: t.kind})
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()

	return layout, nil
}

// Format renders t with month names in language.
// Unknown languages fall back to DefaultLanguage.
func (l Layout) Format(t time.Time, language string) string {
	months, ok := monthNames[strings.ToLower(language)]
	if !ok {
		months = monthNames[DefaultLanguage]
	}

	var b strings.Builder
	for _, s := range l {
		switch s.kind {
		case literal:
			b.WriteString(s.text)
		case year4:
			b.WriteString(strconv.Itoa(t.Year()))
		case year2:
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case monthLong:
			b.WriteString(months[t.Month()-1])
		case monthShort:
			b.WriteString(shortMonth(months[t.Month()-1]))
		case month2:
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case month1:
			b.WriteString(strconv.Itoa(int(t.Month())))
		case day2:
			fmt.Fprintf(&b, "%02d", t.Day())
		case day1:
			b.WriteString(strconv.Itoa(t.Day()))
		}
	}
	return b.String()
}

// shortMonth returns the first three runes of a month name.
func shortMonth(name string) string {
	r := []rune(name)
	if len(r) <= 3 {
		return name
	}
	return string(r[:3])
}

// IsAuto reports whether value requests a computed date ("auto" or "auto:FORMAT").
func IsAuto(value string) bool {
	lower := strings.ToLower(value)
	return lower == "auto" || strings.HasPrefix(lower, "auto:")
}

// ResolveDate handles the date value of the title page.
//   - "" or "today" → \today (LaTeX prints the compile date)
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using named preset (iso, european, us, long)
//   - any other value → returned unchanged (passthrough)
//
// Month names are rendered in language. The time parameter allows
// injecting a fixed time for testing.
func ResolveDate(value string, t time.Time, language string) (string, error) {
	lower := strings.ToLower(value)

	if lower == "" || lower == "today" {
		return Today, nil
	}

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	formatPart := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		// Preserve original case for format tokens.
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	}

	layout, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}
	return layout.Format(t, language), nil
}
