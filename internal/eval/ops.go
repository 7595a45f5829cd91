package eval

import (
	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/value"
)

func unary(op ast.Op, x value.Value, pos ast.Pos) (value.Value, error) {
	switch op {
	case ast.OpNeg:
		switch x := x.(type) {
		case value.Int:
			return -x, nil
		case value.Float:
			return -x, nil
		}
	case ast.OpNot:
		if b, ok := value.Truthy(x); ok {
			return value.Bool(!b), nil
		}
	}
	return nil, diag.Runtimef(pos, "Invalid operand to %s: %s", op, x.Kind())
}

// arith applies + - * / %. Int with Int stays Int and wraps; a Float
// operand makes the result Float.
func arith(op ast.Op, l, r value.Value, pos ast.Pos) (value.Value, error) {
	if a, ok := l.(value.Int); ok {
		if b, ok := r.(value.Int); ok {
			return intArith(op, a, b, pos)
		}
	}
	a, aok := toFloat(l)
	b, bok := toFloat(r)
	if !aok || !bok || op == ast.OpMod {
		return nil, mismatch(op, l, r, pos)
	}
	switch op {
	case ast.OpAdd:
		return a + b, nil
	case ast.OpSub:
		return a - b, nil
	case ast.OpMul:
		return a * b, nil
	case ast.OpDiv:
		return a / b, nil
	}
	return nil, mismatch(op, l, r, pos)
}

func intArith(op ast.Op, a, b value.Int, pos ast.Pos) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return a + b, nil
	case ast.OpSub:
		return a - b, nil
	case ast.OpMul:
		return a * b, nil
	case ast.OpDiv, ast.OpMod:
		if b == 0 {
			return nil, diag.Runtimef(pos, "Division by zero")
		}
		if op == ast.OpDiv {
			return a / b, nil
		}
		return a % b, nil
	}
	return nil, mismatch(op, a, b, pos)
}

func toFloat(v value.Value) (value.Float, bool) {
	switch v := v.(type) {
	case value.Float:
		return v, true
	case value.Int:
		return value.Float(v), true
	}
	return 0, false
}

// compare needs both operands of one kind. Bools only support == and !=.
// Floats compare with IEEE semantics, so NaN is unequal to everything.
func compare(op ast.Op, l, r value.Value, pos ast.Pos) (value.Value, error) {
	if l.Kind() != r.Kind() {
		return nil, mismatch(op, l, r, pos)
	}
	var (
		b  bool
		ok bool
	)
	switch a := l.(type) {
	case value.Int:
		b, ok = relate(op, a, r.(value.Int))
	case value.Float:
		b, ok = relate(op, a, r.(value.Float))
	case value.Char:
		b, ok = relate(op, a, r.(value.Char))
	case value.Bool:
		switch op {
		case ast.OpEq:
			b, ok = a == r.(value.Bool), true
		case ast.OpNe:
			b, ok = a != r.(value.Bool), true
		}
	}
	if !ok {
		return nil, mismatch(op, l, r, pos)
	}
	return value.Bool(b), nil
}

func relate[T value.Int | value.Float | value.Char](op ast.Op, a, b T) (bool, bool) {
	switch op {
	case ast.OpEq:
		return a == b, true
	case ast.OpNe:
		return a != b, true
	case ast.OpLt:
		return a < b, true
	case ast.OpLe:
		return a <= b, true
	case ast.OpGt:
		return a > b, true
	case ast.OpGe:
		return a >= b, true
	}
	return false, false
}

func mismatch(op ast.Op, l, r value.Value, pos ast.Pos) error {
	return diag.Runtimef(pos, "Invalid operands to %s: %s and %s", op, l.Kind(), r.Kind())
}
