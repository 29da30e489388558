package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const testDocumentTemplate = `\documentclass{report}
\usepackage[<<.Language>>]{babel}
\lhead{<<.Header>>}
\begin{document}
{\Huge <<.Title>>}\\
<<.Subtitle>> / <<.Tagline>> / <<.Date>>
<<.Body>>
\end{document}
`

func TestNewDocumentAssembly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"valid template", testDocumentTemplate, nil},
		{"braces are not actions", `{{\bf x}}`, nil},
		{"unclosed action", "<<.Title", ErrTemplateParse},
		{"unknown function", "<<nosuchfunc .Title>>", ErrTemplateParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDocumentAssembly("test", tt.content)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewDocumentAssembly() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewDocumentAssembly() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentAssembly_Assemble(t *testing.T) {
	t.Parallel()

	a, err := NewDocumentAssembly("test", testDocumentTemplate)
	if err != nil {
		t.Fatalf("NewDocumentAssembly() error = %v", err)
	}

	data := EscapeDocumentData(DocumentData{
		Title:    "Growth 50%",
		Subtitle: "ChatGPT Deep Research",
		Tagline:  "Underlag framtagen av AI",
		Header:   "ChatGPT Deep Research",
		Date:     `\today`,
		Language: "swedish",
		Body:     `\chapter*{Intro}`,
	})

	got, err := a.Assemble(context.Background(), &data)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for _, want := range []string{
		`\usepackage[swedish]{babel}`,
		`\lhead{ChatGPT Deep Research}`,
		`{\Huge Growth 50\%}\\`,
		`ChatGPT Deep Research / Underlag framtagen av AI / \today`,
		`\chapter*{Intro}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Assemble() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestDocumentAssembly_Assemble_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		a, err := NewDocumentAssembly("test", "<<.Missing>>")
		if err != nil {
			t.Fatalf("NewDocumentAssembly() error = %v", err)
		}
		_, err = a.Assemble(context.Background(), &DocumentData{})
		if !errors.Is(err, ErrDocumentRender) {
			t.Errorf("Assemble() error = %v, want ErrDocumentRender", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		a, err := NewDocumentAssembly("test", "<<.Title>>")
		if err != nil {
			t.Fatalf("NewDocumentAssembly() error = %v", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = a.Assemble(ctx, &DocumentData{Title: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Assemble() error = %v, want context.Canceled", err)
		}
	})

	t.Run("nil data renders empty", func(t *testing.T) {
		t.Parallel()

		a, err := NewDocumentAssembly("test", "[<<.Title>>]")
		if err != nil {
			t.Fatalf("NewDocumentAssembly() error = %v", err)
		}
		got, err := a.Assemble(context.Background(), nil)
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if got != "[]" {
			t.Errorf("Assemble() = %q, want %q", got, "[]")
		}
	})
}

func TestEscapeDocumentData(t *testing.T) {
	t.Parallel()

	in := DocumentData{
		Title:    "Q_1 50%",
		Subtitle: "α study",
		Tagline:  "10 000",
		Header:   "R&D_x",
		Date:     `\today`,
		Body:     `\section*{x_}`,
	}
	got := EscapeDocumentData(in)

	checks := []struct {
		field, got, want string
	}{
		{"Title", got.Title, `Q\_1 50\%`},
		{"Subtitle", got.Subtitle, `$\alpha$ study`},
		{"Tagline", got.Tagline, "10 000"},
		{"Header", got.Header, `R\&D\_x`},
		{"Date", got.Date, `\today`},
		{"Body", got.Body, `\section*{x_}`},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
}
