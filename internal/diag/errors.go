// Package diag holds the error kinds produced while parsing, checking and
// running a program, and renders them against the source.
package diag

import (
	"fmt"
	"strings"

	"github.com/mfaerevaag/semic/internal/ast"
)

type ParseError struct {
	Msg string
	Pos ast.Pos
}

func (e *ParseError) Error() string { return e.Msg }

// ParseErrors is every syntax error found in one file, in source order.
type ParseErrors []*ParseError

func (es ParseErrors) Error() string {
	switch len(es) {
	case 0:
		return "no parse errors"
	case 1:
		return es[0].Msg
	}
	return fmt.Sprintf("%s (and %d more errors)", es[0].Msg, len(es)-1)
}

// Problem is a single semantic error. Pos is ast.NoPos when the problem has
// no location, like a missing main.
type Problem struct {
	Msg string
	Pos ast.Pos
}

// CheckerError carries all semantic errors of a program.
type CheckerError struct {
	Problems []Problem
}

func (e *CheckerError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Msg)
	}
	return "checker: " + strings.Join(msgs, "; ")
}

func (e *CheckerError) Add(pos ast.Pos, format string, args ...any) {
	e.Problems = append(e.Problems, Problem{Msg: fmt.Sprintf(format, args...), Pos: pos})
}

func (e *CheckerError) Len() int { return len(e.Problems) }

type RuntimeError struct {
	Msg string
	Pos ast.Pos
}

func (e *RuntimeError) Error() string { return e.Msg }

func Runtimef(pos ast.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// UnknownError covers states the checker should have ruled out and I/O
// failures of the debug console.
type UnknownError struct {
	Msg string
}

func (e *UnknownError) Error() string { return e.Msg }

func Unknownf(format string, args ...any) *UnknownError {
	return &UnknownError{Msg: fmt.Sprintf(format, args...)}
}
