package check

import "github.com/mfaerevaag/semic/internal/ast"

// Fold evaluates an integer constant expression. Division by zero and any
// non-constant operand make it fail.
func Fold(e ast.Expr) (int32, bool) {
	switch e := e.(type) {
	case *ast.IntLit:
		return e.Value, true
	case *ast.UnaryExpr:
		x, ok := Fold(e.X)
		if !ok || e.Op != ast.OpNeg {
			return 0, false
		}
		return -x, true
	case *ast.BinaryExpr:
		a, ok := Fold(e.Left)
		if !ok {
			return 0, false
		}
		b, ok := Fold(e.Right)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case ast.OpAdd:
			return a + b, true
		case ast.OpSub:
			return a - b, true
		case ast.OpMul:
			return a * b, true
		case ast.OpDiv:
			if b == 0 {
				return 0, false
			}
			return a / b, true
		case ast.OpMod:
			if b == 0 {
				return 0, false
			}
			return a % b, true
		}
	}
	return 0, false
}
