package eval

import (
	"fmt"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
	"github.com/mfaerevaag/semic/internal/value"
)

var _ ast.StmtVisitor[control] = (*Interpreter)(nil)

func (i *Interpreter) VisitDecl(s *ast.DeclStmt) (control, error) {
	size := env.NoSize
	if s.Size != nil {
		n, err := i.evalInt(s.Size, "Array size")
		if err != nil {
			return fallthru, err
		}
		if n < 0 {
			return fallthru, diag.Runtimef(s.Size.Pos(), "Size of array '%s' is negative: %d", s.Name, n)
		}
		size = n
	}
	i.env.Locals.Insert(s.Name, s.Type, size, nil, s.At)
	return fallthru, nil
}

func (i *Interpreter) VisitAssign(s *ast.AssignStmt) (control, error) {
	ent, err := i.env.Resolve(s.Name, s.At)
	if err != nil {
		return fallthru, err
	}
	if s.Index == nil {
		v, err := i.eval(s.Value)
		if err != nil {
			return fallthru, err
		}
		if v, err = cast(v, ent.Type, s.At); err != nil {
			return fallthru, err
		}
		return fallthru, i.env.SetValue(s.Name, v, s.At)
	}

	idx, err := i.evalInt(s.Index, "Array index")
	if err != nil {
		return fallthru, err
	}
	v, err := i.eval(s.Value)
	if err != nil {
		return fallthru, err
	}
	if v, err = cast(v, ent.Type.ElemType(), s.At); err != nil {
		return fallthru, err
	}
	return fallthru, i.env.SetElem(s.Name, idx, v, s.At)
}

func (i *Interpreter) VisitReturn(s *ast.ReturnStmt) (control, error) {
	if s.Value == nil {
		return control{ret: true}, nil
	}
	v, err := i.eval(s.Value)
	if err != nil {
		return fallthru, err
	}
	return control{ret: true, val: v}, nil
}

func (i *Interpreter) VisitBlock(s *ast.BlockStmt) (control, error) {
	i.env.Locals.PushFrame()
	ctl, err := i.stmts(s.Stmts)
	if err != nil {
		return ctl, err
	}
	return ctl, i.env.Locals.PopFrame()
}

func (i *Interpreter) VisitIf(s *ast.IfStmt) (control, error) {
	ok, err := i.cond(s.Cond)
	if err != nil {
		return fallthru, err
	}
	switch {
	case ok:
		return i.exec(s.Then)
	case s.Else != nil:
		return i.exec(s.Else)
	}
	return fallthru, nil
}

// VisitWhile notifies the hook again before every re-test of the condition.
func (i *Interpreter) VisitWhile(s *ast.WhileStmt) (control, error) {
	for {
		ok, err := i.cond(s.Cond)
		if err != nil || !ok {
			return fallthru, err
		}
		ctl, err := i.exec(s.Body)
		if err != nil || ctl.ret {
			return ctl, err
		}
		if err := i.before(s); err != nil {
			return fallthru, err
		}
	}
}

func (i *Interpreter) VisitCall(s *ast.CallStmt) (control, error) {
	_, err := i.invoke(s.Call)
	return fallthru, err
}

func (i *Interpreter) VisitPrint(s *ast.PrintStmt) (control, error) {
	v, err := i.eval(s.Value)
	if err != nil {
		return fallthru, err
	}
	if _, err := fmt.Fprintln(i.out, v.Display()); err != nil {
		return fallthru, diag.Unknownf("print: %v", err)
	}
	return fallthru, nil
}

func (i *Interpreter) VisitBadStmt(*ast.BadStmt) (control, error) {
	return fallthru, diag.Unknownf("cannot execute a statement that failed to parse")
}

// cond evaluates a condition, which must be a bool.
func (i *Interpreter) cond(e ast.Expr) (bool, error) {
	v, err := i.eval(e)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return false, diag.Runtimef(e.Pos(), "Condition must be a bool, got %s %s", v.Kind(), v)
	}
	return bool(b), nil
}

func (i *Interpreter) evalInt(e ast.Expr, what string) (int, error) {
	v, err := i.eval(e)
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Int)
	if !ok {
		return 0, diag.Runtimef(e.Pos(), "%s must be an int, got %s %s", what, v.Kind(), v)
	}
	return int(n), nil
}
