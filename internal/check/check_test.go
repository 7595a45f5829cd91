package check

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/types"
)

func intVar(at ast.Pos, name string) *ast.VarDecl {
	return &ast.VarDecl{At: at, Type: types.IntT(), Name: name}
}

func proto(at ast.Pos, name string) *ast.Proto {
	return &ast.Proto{At: at, Ret: types.IntT(), Name: name}
}

func fn(at ast.Pos, name string) *ast.FuncDecl {
	return &ast.FuncDecl{Proto: proto(at, name)}
}

func problems(t *testing.T, err error) []diag.Problem {
	t.Helper()
	var cerr *diag.CheckerError
	be.True(t, errors.As(err, &cerr))
	return cerr.Problems
}

func TestAccumulates(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		intVar(0, "a"), intVar(7, "a"),
		intVar(14, "b"), intVar(21, "b"),
	}}
	_, _, err := Check(prog)
	ps := problems(t, err)
	be.Equal(t, len(ps), 3)
	be.Equal(t, ps[0], diag.Problem{Msg: "Variable 'a' already declared", Pos: 7})
	be.Equal(t, ps[1], diag.Problem{Msg: "Variable 'b' already declared", Pos: 21})
	be.Equal(t, ps[2], diag.Problem{Msg: "Function 'main' missing", Pos: ast.NoPos})
}

func TestMainRequired(t *testing.T) {
	_, _, err := Check(&ast.Program{})
	be.Equal(t, len(problems(t, err)), 1)

	_, _, err = Check(&ast.Program{Decls: []ast.Decl{proto(0, "main")}})
	ps := problems(t, err)
	be.Equal(t, len(ps), 1)
	be.Equal(t, ps[0].Msg, "Function 'main' missing")

	funcs, globals, err := Check(&ast.Program{Decls: []ast.Decl{fn(0, "main")}})
	be.Err(t, err, nil)
	_, ok := funcs.Func("main")
	be.True(t, ok)
	be.Equal(t, globals.Depth(), 1)
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name    string
		decls   []ast.Decl
		defined bool
		want    []string
	}{
		{"proto then def", []ast.Decl{proto(0, "f"), fn(1, "f"), fn(2, "main")}, true, nil},
		{"two protos", []ast.Decl{proto(0, "f"), proto(1, "f"), fn(2, "main")}, false, nil},
		{"def twice", []ast.Decl{fn(0, "f"), fn(1, "f"), fn(2, "main")}, true, []string{"Function 'f' already declared"}},
		{"proto after def", []ast.Decl{fn(0, "f"), proto(1, "f"), fn(2, "main")}, true, []string{"Function 'f' already defined"}},
		{"bad decl skipped", []ast.Decl{&ast.BadDecl{At: 0}, fn(2, "main")}, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			funcs, _, err := Check(&ast.Program{Decls: tt.decls})
			if tt.want == nil {
				be.Err(t, err, nil)
				_, ok := funcs.Func("f")
				be.Equal(t, ok, tt.defined)
				return
			}
			ps := problems(t, err)
			be.Equal(t, len(ps), len(tt.want))
			for i, p := range ps {
				be.Equal(t, p.Msg, tt.want[i])
			}
		})
	}
}

func TestProtoAfterDefinitionWithoutMain(t *testing.T) {
	_, _, err := Check(&ast.Program{Decls: []ast.Decl{fn(0, "f"), proto(1, "f")}})
	ps := problems(t, err)
	be.Equal(t, len(ps), 2)
	be.Equal(t, ps[1].Msg, "Function 'main' missing")
}

func TestGlobalArraySize(t *testing.T) {
	size := &ast.BinaryExpr{Op: ast.OpMul, Left: &ast.IntLit{Value: 2}, Right: &ast.IntLit{Value: 3}}
	arr := &ast.VarDecl{At: 0, Type: types.ReferenceTo(types.IntT()), Name: "g", Size: size}
	_, globals, err := Check(&ast.Program{Decls: []ast.Decl{arr, fn(10, "main")}})
	be.Err(t, err, nil)
	_, n, ok := globals.Type("g")
	be.True(t, ok)
	be.Equal(t, n, 6)
}

func TestGlobalArraySizeNotConstant(t *testing.T) {
	arr := &ast.VarDecl{At: 0, Type: types.ReferenceTo(types.IntT()), Name: "g", Size: &ast.Ident{At: 6, Name: "n"}}
	_, _, err := Check(&ast.Program{Decls: []ast.Decl{arr, fn(10, "main")}})
	ps := problems(t, err)
	be.Equal(t, ps[0], diag.Problem{Msg: "Size of array 'g' must be a constant integer", Pos: 6})
}

func TestFold(t *testing.T) {
	tests := []struct {
		e  ast.Expr
		n  int32
		ok bool
	}{
		{&ast.IntLit{Value: 4}, 4, true},
		{&ast.UnaryExpr{Op: ast.OpNeg, X: &ast.IntLit{Value: 4}}, -4, true},
		{&ast.BinaryExpr{Op: ast.OpSub, Left: &ast.IntLit{Value: 9}, Right: &ast.IntLit{Value: 4}}, 5, true},
		{&ast.BinaryExpr{Op: ast.OpDiv, Left: &ast.IntLit{Value: 9}, Right: &ast.IntLit{Value: 0}}, 0, false},
		{&ast.FloatLit{Value: 1}, 0, false},
	}
	for _, tt := range tests {
		n, ok := Fold(tt.e)
		be.Equal(t, ok, tt.ok)
		be.Equal(t, n, tt.n)
	}
}
