// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/glshader/shader"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Printer writes reports to a terminal, in color when the terminal
// supports it, with the shader source lines that compile logs refer to.
type Printer struct {

	// Sources are the shader sources the reported errors came from,
	// used to show source excerpts. It may be nil.
	Sources *shader.Sources

	// Context is the number of source lines shown before and after
	// each line named by a log.
	Context int

	// Style is the chroma style used to highlight source.
	Style string

	out *termenv.Output
}

// NewPrinter returns a new [Printer] writing to w, with the color
// profile detected from w unless given in opts.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{
		Context: 1,
		Style:   "monokai",
		out:     termenv.NewOutput(w, opts...),
	}
}

// Fprint writes the report for err to w, with plain text unless w is
// a color terminal, using src for source excerpts.
func Fprint(w io.Writer, err error, src *shader.Sources) {
	p := NewPrinter(w)
	p.Sources = src
	p.Print(err)
}

// Print writes the report for err.
func (p *Printer) Print(err error) {
	p.PrintReport(Describe(err))
}

// PrintReport writes the given report.
func (p *Printer) PrintReport(r *Report) {
	out := p.out
	fmt.Fprintln(out, p.styled("error:", "9", true)+" "+p.styled(r.Title, "", true))
	if r.Location != "" {
		fmt.Fprintln(out, "  at "+p.styled(r.Location, "12", false))
	}
	for _, st := range r.Stages {
		fmt.Fprintln(out, "  "+p.styled(st.Kind.String()+" shader:", "11", true))
		var text string
		if p.Sources != nil {
			text, _ = p.Sources.Source(st.Kind)
		}
		for _, ll := range st.Lines {
			fmt.Fprintln(out, "    "+ll.Message)
			if ll.Line > 0 && text != "" {
				p.excerpt(text, ll.Line)
			}
		}
	}
	if r.Log != "" {
		for _, ln := range strings.Split(strings.TrimSpace(r.Log), "\n") {
			fmt.Fprintln(out, "    "+ln)
		}
	}
}

// styled returns s in the given ANSI color, and bold, when the
// output supports color.
func (p *Printer) styled(s, color string, bold bool) string {
	if p.out.Profile == termenv.Ascii {
		return s
	}
	st := p.out.String(s)
	if color != "" {
		st = st.Foreground(p.out.Color(color))
	}
	if bold {
		st = st.Bold()
	}
	return st.String()
}

// excerpt writes the source lines around the given 1-based line,
// marking the line itself.
func (p *Printer) excerpt(text string, line int) {
	lines := p.sourceLines(text)
	if line > len(lines) {
		return
	}
	from := max(1, line-p.Context)
	to := min(len(lines), line+p.Context)
	width := len(fmt.Sprint(to))
	for n := from; n <= to; n++ {
		mark := " "
		num := fmt.Sprintf("%*d", width, n)
		if n == line {
			mark = p.styled(">", "9", true)
			num = p.styled(num, "9", true)
		} else {
			num = p.styled(num, "8", false)
		}
		fmt.Fprintf(p.out, "    %s %s | %s\n", mark, num, lines[n-1])
	}
}

// sourceLines returns the lines of text, syntax highlighted as GLSL
// when the output supports color.
func (p *Printer) sourceLines(text string) []string {
	plain := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	fname := formatterName(p.out.Profile)
	if fname == "" {
		return plain
	}
	lx := lexers.Get("glsl")
	if lx == nil {
		return plain
	}
	lexer := chroma.Coalesce(lx)
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return plain
	}
	formatter := formatters.Get(fname)
	style := styles.Get(p.Style)
	tlines := chroma.SplitTokensIntoLines(iterator.Tokens())
	hl := make([]string, len(plain))
	for i := range plain {
		if i >= len(tlines) {
			hl[i] = plain[i]
			continue
		}
		toks := make([]chroma.Token, len(tlines[i]))
		for j, tok := range tlines[i] {
			tok.Value = strings.TrimRight(tok.Value, "\n")
			toks[j] = tok
		}
		var b strings.Builder
		if err := formatter.Format(&b, style, chroma.Literator(toks...)); err != nil {
			hl[i] = plain[i]
			continue
		}
		hl[i] = b.String()
	}
	return hl
}

// formatterName returns the chroma terminal formatter for the color
// profile, or "" for no color.
func formatterName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	}
	return ""
}

// PrintSources writes each section of src in the combined format,
// highlighted when the output supports color.
func (p *Printer) PrintSources(src *shader.Sources) {
	for _, k := range src.Kinds() {
		text, _ := src.Source(k)
		fmt.Fprintln(p.out, p.styled(shader.SectionMarker+" "+k.String(), "13", true))
		for _, ln := range p.sourceLines(text) {
			fmt.Fprintln(p.out, ln)
		}
	}
}
