package md2tex

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var headingParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// HeadingTitle returns the plain text of the first level-1 heading in
// markdown, or "" if there is none. Inline markup is dropped; raw HTML such
// as <sub> is kept so the title goes through the same substitutions as the
// body.
func HeadingTitle(markdown string) string {
	src := []byte(markdown)
	doc := headingParser.Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level != 1 {
			return ast.WalkSkipChildren, nil
		}
		var sb strings.Builder
		inlineText(h, src, &sb)
		title = strings.TrimSpace(sb.String())
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkStop, nil
	})

	return title
}

// inlineText appends the text content of n's inline children to sb.
func inlineText(n ast.Node, src []byte, sb *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				sb.Write(seg.Value(src))
			}
		default:
			inlineText(c, src, sb)
		}
	}
}
