package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Header row, separator row, then contiguous data rows. The last row may
	// end the document without a trailing newline.
	tablePattern = regexp.MustCompile(`(?m)^\|(.+)\|\n\|[-: \t|]+\|\n((?:\|.*\|(?:\n|\z))+)`)

	// Header cells mentioning digits, periods or percent signs are numeric.
	numericHeader = regexp.MustCompile(`[\d.%]`)
)

// Column formats for tabular column specifications.
const (
	numericColumn = "r"
	textColumn    = "p{6cm}"
)

// Fixed layout of a converted table.
const (
	tableIndent = "    "
	rowIndent   = "        "
	rowEnd      = ` \\` + "\n" + rowIndent + `\hline` + "\n"
)

// TableStage returns the table conversion stage for opts.
func TableStage(opts TableOptions) Stage {
	return Stage{
		Name: "tables",
		Apply: func(text string) string {
			return ConvertTables(text, opts)
		},
	}
}

// ConvertTables replaces every Markdown pipe table with a table environment.
// Rows are padded or truncated to the header's column count.
func ConvertTables(text string, opts TableOptions) string {
	caption := opts.Caption
	if caption == "" {
		caption = DefaultTableCaption
	}
	label := opts.Label
	if label == "" {
		label = DefaultTableLabel
	}

	n := 0
	return tablePattern.ReplaceAllStringFunc(text, func(block string) string {
		n++
		m := tablePattern.FindStringSubmatch(block)
		tableLabel := label
		if opts.Numbered {
			tableLabel = label + "_" + strconv.Itoa(n)
		}
		return renderTable(m[1], m[2], caption, tableLabel)
	})
}

// renderTable builds the LaTeX for one table. header is the header row
// without its outer pipes; rows holds the data lines.
func renderTable(header, rows, caption, label string) string {
	columns := trimCells(strings.Split(header, "|"))

	var b strings.Builder
	b.WriteString(`\begin{table}[h]` + "\n")
	b.WriteString(tableIndent + `\centering` + "\n")
	b.WriteString(tableIndent + `\renewcommand{\arraystretch}{1.2}` + "\n")
	b.WriteString(tableIndent + `\begin{tabular}{|` + columnSpec(columns) + "|}\n")
	b.WriteString(rowIndent + `\hline` + "\n")

	writeRow(&b, columns)
	for _, line := range strings.Split(strings.TrimRight(rows, "\n"), "\n") {
		writeRow(&b, reconcile(splitRow(line), len(columns)))
	}

	b.WriteString(tableIndent + `\end{tabular}` + "\n")
	b.WriteString(tableIndent + `\caption{` + caption + "}\n")
	b.WriteString(tableIndent + `\label{` + label + "}\n")
	b.WriteString(`\end{table}` + "\n")
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(rowIndent)
	b.WriteString(strings.Join(cells, " & "))
	b.WriteString(rowEnd)
}

// columnSpec derives the tabular column specification from header cells.
func columnSpec(columns []string) string {
	formats := make([]string, len(columns))
	for i, col := range columns {
		formats[i] = columnFormat(col)
	}
	return strings.Join(formats, "|")
}

// columnFormat returns the format for a single header cell.
func columnFormat(header string) string {
	if numericHeader.MatchString(header) {
		return numericColumn
	}
	return textColumn
}

// splitRow returns the trimmed cells of "| a | b |", outer pipes dropped.
func splitRow(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return nil
	}
	return trimCells(parts[1 : len(parts)-1])
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// reconcile forces cells to exactly n entries: missing cells are empty,
// surplus cells are dropped.
func reconcile(cells []string, n int) []string {
	if len(cells) >= n {
		return cells[:n]
	}
	padded := make([]string, n)
	copy(padded, cells)
	return padded
}
