package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/source"
)

// Renderer prints errors with the offending source line and a caret.
type Renderer struct {
	filename string
	lines    *source.LineMap
	w        io.Writer
	color    bool
}

func NewRenderer(w io.Writer, filename, src string) *Renderer {
	return &Renderer{filename: filename, lines: source.NewLineMap(src), w: w}
}

// WithColor enables ANSI colouring of the heading.
func (r *Renderer) WithColor(on bool) *Renderer {
	r.color = on
	return r
}

type located struct {
	msg string
	pos ast.Pos
}

// Render writes err. Errors outside the taxonomy are printed as plain errors.
func (r *Renderer) Render(err error) {
	if err == nil {
		return
	}
	head, items := classify(err)
	for _, it := range items {
		if line, col, ok := r.lines.Position(int(it.pos)); ok {
			fmt.Fprintf(r.w, "%s: line %d:%d (%s)\n", r.head(head), line, col, r.filename)
			fmt.Fprintf(r.w, " | %s\n", r.lines.Text(line))
			fmt.Fprintf(r.w, " | %s^\n", strings.Repeat(" ", col-1))
		} else {
			fmt.Fprintf(r.w, "%s: (%s)\n", r.head(head), r.filename)
		}
		fmt.Fprintf(r.w, " -> %s\n", it.msg)
	}
}

func (r *Renderer) head(s string) string {
	if !r.color {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func classify(err error) (string, []located) {
	var (
		parseErrs ParseErrors
		parseErr  *ParseError
		checkErr  *CheckerError
		runErr    *RuntimeError
	)
	switch {
	case errors.As(err, &parseErrs):
		items := make([]located, 0, len(parseErrs))
		for _, e := range parseErrs {
			items = append(items, located{e.Msg, e.Pos})
		}
		return "Syntax error", items
	case errors.As(err, &parseErr):
		return "Syntax error", []located{{parseErr.Msg, parseErr.Pos}}
	case errors.As(err, &checkErr):
		items := make([]located, 0, len(checkErr.Problems))
		for _, p := range checkErr.Problems {
			items = append(items, located{p.Msg, p.Pos})
		}
		return "Checker error", items
	case errors.As(err, &runErr):
		return "Run-time error", []located{{runErr.Msg, runErr.Pos}}
	}
	return "Error", []located{{err.Error(), ast.NoPos}}
}
