package ast

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/types"
)

func TestSprintExpr(t *testing.T) {
	// 1 + 2 * 2 * 4
	e := &BinaryExpr{Op: OpAdd,
		Left: &IntLit{Value: 1},
		Right: &BinaryExpr{Op: OpMul,
			Left:  &BinaryExpr{Op: OpMul, Left: &IntLit{Value: 2}, Right: &IntLit{Value: 2}},
			Right: &IntLit{Value: 4},
		},
	}
	be.Equal(t, Sprint(e), "(1 + ((2 * 2) * 4))")
	be.Equal(t, Sprint(&UnaryExpr{Op: OpNeg, X: &Ident{Name: "x"}}), "(-x)")
	be.Equal(t, Sprint(&FloatLit{Value: 3}), "3.0")
	be.Equal(t, Sprint(&CharLit{Value: 'a'}), "'a'")
	be.Equal(t, Sprint(&CallExpr{Name: "f", Args: []Expr{&StringLit{Value: "hi"}, &IndexExpr{Name: "a", Index: &IntLit{Value: 0}}}}), `f("hi", a[0])`)
}

func TestSprintProgram(t *testing.T) {
	prog := &Program{Decls: []Decl{
		&VarDecl{Type: types.ReferenceTo(types.IntT()), Name: "g", Size: &IntLit{Value: 3}},
		&Proto{Ret: types.VoidT(), Name: "f", Params: []Param{{Type: types.CharT(), Name: "c"}}},
		&FuncDecl{
			Proto: &Proto{Ret: types.IntT(), Name: "main"},
			Body: []Stmt{
				&IfStmt{Cond: &Ident{Name: "b"}, Then: &ReturnStmt{Value: &IntLit{Value: 1}}, Else: &BlockStmt{}},
				&WhileStmt{Cond: &Ident{Name: "b"}, Body: &PrintStmt{Value: &Ident{Name: "x"}}},
				&ReturnStmt{},
			},
		},
		&BadDecl{},
	}}
	want := "int g[3];\n" +
		"void f(char c);\n" +
		"int main() { if (b) return 1; else {} while (b) print(x); return; }\n" +
		"error"
	be.Equal(t, SprintProgram(prog), want)
}

func TestVisitStmtNil(t *testing.T) {
	var p printer
	_, err := VisitStmt[string](p, nil)
	var unknown *UnknownNodeError
	be.True(t, errors.As(err, &unknown))
	_, err = VisitExpr[string](p, nil)
	be.True(t, errors.As(err, &unknown))
}

func TestLocated(t *testing.T) {
	be.True(t, Located(&AssignStmt{At: 3}))
	be.True(t, !Located(&BlockStmt{}))
	be.True(t, !Located(&BadStmt{}))
	be.True(t, !Located(nil))
}
