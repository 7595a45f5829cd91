package eval

import (
	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/value"
)

var _ ast.ExprVisitor[value.Value] = (*Interpreter)(nil)

func (i *Interpreter) VisitIntLit(e *ast.IntLit) (value.Value, error) {
	return value.Int(e.Value), nil
}

func (i *Interpreter) VisitFloatLit(e *ast.FloatLit) (value.Value, error) {
	return value.Float(e.Value), nil
}

func (i *Interpreter) VisitStringLit(e *ast.StringLit) (value.Value, error) {
	return value.StringOf(e.Value), nil
}

func (i *Interpreter) VisitCharLit(e *ast.CharLit) (value.Value, error) {
	return value.Char(e.Value), nil
}

func (i *Interpreter) VisitIdent(e *ast.Ident) (value.Value, error) {
	return i.current(e.Name, e.At)
}

// current resolves name locals first. A declared array that was never
// written reads as all zeros.
func (i *Interpreter) current(name string, pos ast.Pos) (value.Value, error) {
	ent, err := i.env.Resolve(name, pos)
	if err != nil {
		return nil, err
	}
	v := ent.Value()
	if v == nil {
		if ent.Size != env.NoSize {
			return value.Zeros(ent.Size), nil
		}
		return nil, diag.Runtimef(pos, "Variable '%s' not initialized", name)
	}
	return v, nil
}

func (i *Interpreter) VisitUnary(e *ast.UnaryExpr) (value.Value, error) {
	x, err := i.eval(e.X)
	if err != nil {
		return nil, err
	}
	return unary(e.Op, x, e.At)
}

func (i *Interpreter) VisitBinary(e *ast.BinaryExpr) (value.Value, error) {
	if e.Op.IsLogical() {
		return i.logical(e)
	}
	l, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	if e.Op.IsRelational() {
		return compare(e.Op, l, r, e.At)
	}
	return arith(e.Op, l, r, e.At)
}

// logical short-circuits && and ||.
func (i *Interpreter) logical(e *ast.BinaryExpr) (value.Value, error) {
	l, err := i.truth(e.Left, e.Op)
	if err != nil {
		return nil, err
	}
	if e.Op == ast.OpLAnd && !l || e.Op == ast.OpLOr && l {
		return value.Bool(l), nil
	}
	r, err := i.truth(e.Right, e.Op)
	if err != nil {
		return nil, err
	}
	return value.Bool(r), nil
}

func (i *Interpreter) truth(e ast.Expr, op ast.Op) (bool, error) {
	v, err := i.eval(e)
	if err != nil {
		return false, err
	}
	b, ok := value.Truthy(v)
	if !ok {
		return false, diag.Runtimef(e.Pos(), "Invalid operand to %s: %s", op, v.Kind())
	}
	return b, nil
}

func (i *Interpreter) VisitCallExpr(e *ast.CallExpr) (value.Value, error) {
	v, err := i.invoke(e)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, diag.Runtimef(e.At, "Expression returned void")
	}
	return v, nil
}

// invoke evaluates the arguments left to right in the caller's scope and
// calls the function.
func (i *Interpreter) invoke(e *ast.CallExpr) (value.Value, error) {
	ent, ok := i.env.Funcs.Lookup(e.Name)
	if !ok {
		return nil, diag.Runtimef(e.At, "Function '%s' not declared", e.Name)
	}
	if !ent.Defined() {
		return nil, diag.Runtimef(e.At, "Function '%s' declared but not defined", e.Name)
	}
	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return i.call(ent.Func, args, e.At)
}

func (i *Interpreter) VisitIndex(e *ast.IndexExpr) (value.Value, error) {
	v, err := i.current(e.Name, e.At)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(value.Array)
	if !ok {
		return nil, diag.Runtimef(e.At, "Expected array, got %s", v)
	}
	idx, err := i.evalInt(e.Index, "Array index")
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(arr) {
		return nil, env.OutOfBounds(e.Name, idx, len(arr), e.At)
	}
	return arr[idx], nil
}

func (i *Interpreter) VisitBadExpr(e *ast.BadExpr) (value.Value, error) {
	return nil, diag.Unknownf("cannot evaluate an expression that failed to parse")
}
