package tsparser

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
)

var binOps = map[string]ast.Op{
	"||": ast.OpLOr,
	"&&": ast.OpLAnd,
	"==": ast.OpEq,
	"!=": ast.OpNe,
	"<":  ast.OpLt,
	"<=": ast.OpLe,
	">":  ast.OpGt,
	">=": ast.OpGe,
	"+":  ast.OpAdd,
	"-":  ast.OpSub,
	"*":  ast.OpMul,
	"/":  ast.OpDiv,
	"%":  ast.OpMod,
}

func (l *lowerer) expr(n *sitter.Node) (ast.Expr, *diag.ParseError) {
	at := pos(n)
	switch n.Kind() {
	case "number_literal":
		return l.number(n)
	case "char_literal":
		s, ok := unescape(strings.TrimSuffix(strings.TrimPrefix(l.text(n), "'"), "'"))
		if !ok || len([]rune(s)) != 1 {
			return nil, errorAt(n, "malformed char literal")
		}
		return &ast.CharLit{At: at, Value: []rune(s)[0]}, nil
	case "string_literal":
		s, ok := unescape(strings.TrimSuffix(strings.TrimPrefix(l.text(n), `"`), `"`))
		if !ok {
			return nil, errorAt(n, "unknown escape sequence")
		}
		return &ast.StringLit{At: at, Value: s}, nil
	case "identifier":
		return &ast.Ident{At: at, Name: l.text(n)}, nil
	case "parenthesized_expression":
		var inner *sitter.Node
		named(n, func(c *sitter.Node) *diag.ParseError {
			inner = c
			return nil
		})
		if inner == nil {
			return nil, errorAt(n, "empty parentheses")
		}
		return l.expr(inner)
	case "unary_expression":
		op, err := field(n, "operator")
		if err != nil {
			return nil, err
		}
		arg, err := field(n, "argument")
		if err != nil {
			return nil, err
		}
		x, err := l.expr(arg)
		if err != nil {
			return nil, err
		}
		switch op.Kind() {
		case "-":
			return &ast.UnaryExpr{At: at, Op: ast.OpNeg, X: x}, nil
		case "!":
			return &ast.UnaryExpr{At: at, Op: ast.OpNot, X: x}, nil
		}
		return nil, errorAt(op, "unsupported operator %s", op.Kind())
	case "binary_expression":
		op, err := field(n, "operator")
		if err != nil {
			return nil, err
		}
		bop, ok := binOps[op.Kind()]
		if !ok {
			return nil, errorAt(op, "unsupported operator %s", op.Kind())
		}
		ln, err := field(n, "left")
		if err != nil {
			return nil, err
		}
		rn, err := field(n, "right")
		if err != nil {
			return nil, err
		}
		left, err := l.expr(ln)
		if err != nil {
			return nil, err
		}
		right, err := l.expr(rn)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{At: pos(op), Op: bop, Left: left, Right: right}, nil
	case "call_expression":
		call, err := l.call(n)
		if err != nil {
			return nil, err
		}
		if call.Name == "print" {
			return nil, errorAt(n, "print is a statement")
		}
		return call, nil
	case "subscript_expression":
		name, idx, err := l.subscript(n)
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{At: at, Name: name, Index: idx}, nil
	}
	return nil, unsupported(n)
}

func (l *lowerer) number(n *sitter.Node) (ast.Expr, *diag.ParseError) {
	lit := l.text(n)
	if strings.ContainsAny(lit, ".eE") {
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return nil, errorAt(n, "invalid float literal %s", lit)
		}
		return &ast.FloatLit{At: pos(n), Value: float32(f)}, nil
	}
	i, err := strconv.ParseInt(lit, 10, 32)
	if err != nil {
		return nil, errorAt(n, "integer literal %s out of range", lit)
	}
	return &ast.IntLit{At: pos(n), Value: int32(i)}, nil
}

func (l *lowerer) call(n *sitter.Node) (*ast.CallExpr, *diag.ParseError) {
	fn, err := field(n, "function")
	if err != nil {
		return nil, err
	}
	if fn.Kind() != "identifier" {
		return nil, unsupported(fn)
	}
	args, err := field(n, "arguments")
	if err != nil {
		return nil, err
	}
	call := &ast.CallExpr{At: pos(n), Name: l.text(fn)}
	err = named(args, func(a *sitter.Node) *diag.ParseError {
		e, err := l.expr(a)
		if err == nil {
			call.Args = append(call.Args, e)
		}
		return err
	})
	return call, err
}

func (l *lowerer) subscript(n *sitter.Node) (string, ast.Expr, *diag.ParseError) {
	arg, err := field(n, "argument")
	if err != nil {
		return "", nil, err
	}
	if arg.Kind() != "identifier" {
		return "", nil, unsupported(arg)
	}
	in, err := field(n, "index")
	if err != nil {
		return "", nil, err
	}
	idx, err := l.expr(in)
	if err != nil {
		return "", nil, err
	}
	return l.text(arg), idx, nil
}

// unescape resolves the escapes the lexer accepts: \n \t \r \0 \\ \' \".
func unescape(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			b.WriteRune(rs[i])
			continue
		}
		i++
		if i == len(rs) {
			return "", false
		}
		switch rs[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteRune(rs[i])
		default:
			return "", false
		}
	}
	return b.String(), true
}
