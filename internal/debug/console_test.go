package debug

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/types"
	"github.com/mfaerevaag/semic/internal/value"
)

// script replays commands and fails with io.EOF when they run out.
type script struct {
	lines   []string
	prompts int
	err     error
}

func (s *script) Prompt(string) (string, error) {
	s.prompts++
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// six lines, one statement on each
const src = "a = 1;\nb = 2;\nc = 3;\n\nd = 4;\ne = 5;\n"

func stmtAt(line int) ast.Stmt {
	off := 0
	for i := 1; i < line; i++ {
		off = strings.Index(src[off:], "\n") + off + 1
	}
	return &ast.AssignStmt{At: ast.Pos(off)}
}

func newEnv() *env.Env {
	globals := env.NewSymTab()
	globals.Insert("g", types.IntT(), env.NoSize, value.Int(7), 0)
	e := env.New(env.NewFuncTab(), globals)
	e.Locals.PushCallFrame()
	return e
}

func TestPausesOnEveryLine(t *testing.T) {
	in := &script{lines: []string{"n", "n", "n"}}
	c := New(src, in, io.Discard, nil)
	e := newEnv()
	for _, line := range []int{1, 2, 3} {
		be.Err(t, c.BeforeStmt(stmtAt(line), e), nil)
	}
	be.Equal(t, in.prompts, 3)
}

func TestSameLineDoesNotPause(t *testing.T) {
	in := &script{lines: []string{"n"}}
	c := New(src, in, io.Discard, nil)
	e := newEnv()
	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil)
	be.Err(t, c.BeforeStmt(&ast.AssignStmt{At: 3}, e), nil)
	be.Equal(t, in.prompts, 1)
}

func TestNextSkipsLines(t *testing.T) {
	in := &script{lines: []string{"next 3", "next 3", "n", "n"}}
	c := New(src, in, io.Discard, nil)
	e := newEnv()

	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil) // pause
	be.Equal(t, in.prompts, 1)
	be.Err(t, c.BeforeStmt(stmtAt(2), e), nil) // skipped
	be.Equal(t, in.prompts, 1)
	be.Err(t, c.BeforeStmt(stmtAt(3), e), nil) // pause, two lines later
	be.Equal(t, in.prompts, 2)
	// line 4 is blank and still counts
	be.Err(t, c.BeforeStmt(stmtAt(5), e), nil)
	be.Equal(t, in.prompts, 3)
	be.Err(t, c.BeforeStmt(stmtAt(6), e), nil)
	be.Equal(t, in.prompts, 4)
}

func TestNextTwoPausesOnAdjacentLine(t *testing.T) {
	in := &script{lines: []string{"next 2", "n", "n"}}
	c := New(src, in, io.Discard, nil)
	e := newEnv()

	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil)
	be.Equal(t, in.prompts, 1)
	be.Err(t, c.BeforeStmt(stmtAt(2), e), nil)
	be.Equal(t, in.prompts, 2)
}

func TestBackwardJumpKeepsSkip(t *testing.T) {
	in := &script{lines: []string{"n", "next 3", "n"}}
	c := New(src, in, io.Discard, nil)
	e := newEnv()

	be.Err(t, c.BeforeStmt(stmtAt(2), e), nil)
	be.Err(t, c.BeforeStmt(stmtAt(3), e), nil) // next 3 leaves skip at 2
	be.Equal(t, in.prompts, 2)
	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil) // earlier line, nothing consumed
	be.Equal(t, in.prompts, 2)
	be.Err(t, c.BeforeStmt(stmtAt(2), e), nil) // skip 2 -> 1
	be.Equal(t, in.prompts, 2)
	be.Err(t, c.BeforeStmt(stmtAt(3), e), nil) // skip 1 -> 0, pause
	be.Equal(t, in.prompts, 3)
}

func TestCommands(t *testing.T) {
	e := newEnv()
	e.Locals.Insert("x", types.IntT(), env.NoSize, nil, 0)
	be.Err(t, e.Locals.SetValue("x", value.Int(1), 7), nil)
	be.Err(t, e.Locals.SetValue("x", value.Int(2), 14), nil)
	e.Locals.Insert("s", types.ReferenceTo(types.CharT()), 3, value.StringOf("hi"), ast.NoPos)

	in := &script{lines: []string{
		"", "jump", "print", "p x", "p g", "p s", "p nope",
		"t x", "t nope", "next zero", "next 0", "n",
	}}
	var out bytes.Buffer
	c := New(src, in, &out, nil)
	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil)

	want := " No command given. Try again\n" +
		" Unknown command 'jump'. Try again\n" +
		" Invalid typing of the variable name\n" +
		" 2\n" +
		" 7 (global)\n" +
		" \"hi\"\n" +
		" Not declared\n" +
		" x = N\\A at line 1\n" +
		" x = 1 at line 2\n" +
		" x = 2 at line 3\n" +
		" N\\A\n" +
		" Incorrect command usage: try 'next [lines]'\n" +
		" Incorrect command usage: try 'next [lines]'\n"
	be.Equal(t, out.String(), want)
}

func TestPrintInvisible(t *testing.T) {
	e := newEnv()
	e.Locals.Insert("x", types.IntT(), env.NoSize, value.Int(3), 0)
	e.Locals.PushCallFrame()

	var out bytes.Buffer
	c := New(src, &script{lines: []string{"p x", "n"}}, &out, nil)
	be.Err(t, c.BeforeStmt(stmtAt(1), e), nil)
	be.Equal(t, out.String(), " 3 (invisible)\n")
}

func TestQuit(t *testing.T) {
	var out bytes.Buffer
	c := New(src, &script{lines: []string{"q"}}, &out, nil)
	err := c.BeforeStmt(stmtAt(1), newEnv())
	be.Err(t, err, ErrQuit)
	be.Equal(t, out.String(), " Bye, bye\n")
}

func TestEOFQuits(t *testing.T) {
	c := New(src, &script{}, io.Discard, nil)
	be.Err(t, c.BeforeStmt(stmtAt(1), newEnv()), ErrQuit)
}

func TestReadError(t *testing.T) {
	c := New(src, &script{err: errors.New("tty gone")}, io.Discard, nil)
	err := c.BeforeStmt(stmtAt(1), newEnv())
	var uerr *diag.UnknownError
	be.True(t, errors.As(err, &uerr))
}

func TestFinish(t *testing.T) {
	var out bytes.Buffer
	c := New(src, &script{lines: []string{"p g", "quit"}}, &out, nil)
	be.Err(t, c.Finish(newEnv()), nil)
	be.Equal(t, out.String(), " End of program\n 7 (global)\n Bye, bye\n")
}
