package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/ast"
)

const prog = "int main() {\n    return x;\n}\n"

func TestRenderRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "a.c", prog).Render(Runtimef(24, "variable '%s' not declared", "x"))
	want := "Run-time error: line 2:12 (a.c)\n" +
		" |     return x;\n" +
		" |            ^\n" +
		" -> variable 'x' not declared\n"
	be.Equal(t, buf.String(), want)
}

func TestRenderCheckerError(t *testing.T) {
	cerr := &CheckerError{}
	cerr.Add(0, "Variable '%s' already declared", "g")
	cerr.Add(ast.NoPos, "Function 'main' missing")
	var buf bytes.Buffer
	NewRenderer(&buf, "a.c", prog).Render(cerr)
	want := "Checker error: line 1:1 (a.c)\n" +
		" | int main() {\n" +
		" | ^\n" +
		" -> Variable 'g' already declared\n" +
		"Checker error: (a.c)\n" +
		" -> Function 'main' missing\n"
	be.Equal(t, buf.String(), want)
	be.Equal(t, cerr.Len(), 2)
}

func TestRenderWrapped(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("run: %w", ParseErrors{{Msg: "expected ';'", Pos: 4}})
	NewRenderer(&buf, "a.c", prog).WithColor(true).Render(err)
	be.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x1b[31mSyntax error\x1b[0m: line 1:5")))
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "a.c", prog).Render(errors.New("boom"))
	be.Equal(t, buf.String(), "Error: (a.c)\n -> boom\n")
}

func TestParseErrorsMessage(t *testing.T) {
	errs := ParseErrors{{Msg: "first"}, {Msg: "second"}}
	be.Equal(t, errs.Error(), "first (and 1 more errors)")
}
