package tsparser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
)

func (l *lowerer) block(n *sitter.Node) (*ast.BlockStmt, *diag.ParseError) {
	block := &ast.BlockStmt{}
	err := named(n, func(c *sitter.Node) *diag.ParseError {
		if c.Kind() == "declaration" {
			ss, err := l.localDecl(c)
			block.Stmts = append(block.Stmts, ss...)
			return err
		}
		s, err := l.stmt(c)
		if s != nil {
			block.Stmts = append(block.Stmts, s)
		}
		return err
	})
	return block, err
}

func (l *lowerer) localDecl(n *sitter.Node) ([]ast.Stmt, *diag.ParseError) {
	typ, err := l.baseType(n)
	if err != nil {
		return nil, err
	}
	if typ.IsVoid() {
		return nil, errorAt(n, "local variables cannot be void")
	}
	var ss []ast.Stmt
	for i, d := range declarators(n, n.ChildByFieldName("type")) {
		at := pos(d)
		if i == 0 {
			at = pos(n)
		}
		name, vt, size, err := l.variable(d, typ)
		if err != nil {
			return nil, err
		}
		ss = append(ss, &ast.DeclStmt{At: at, Type: vt, Name: name, Size: size})
	}
	return ss, nil
}

// stmt lowers one statement. The empty statement lowers to nil.
func (l *lowerer) stmt(n *sitter.Node) (ast.Stmt, *diag.ParseError) {
	at := pos(n)
	switch n.Kind() {
	case "compound_statement":
		return l.block(n)
	case "expression_statement":
		var e *sitter.Node
		named(n, func(c *sitter.Node) *diag.ParseError {
			e = c
			return nil
		})
		if e == nil {
			return nil, nil
		}
		return l.exprStmt(e)
	case "return_statement":
		ret := &ast.ReturnStmt{At: at}
		var err *diag.ParseError
		named(n, func(c *sitter.Node) *diag.ParseError {
			ret.Value, err = l.expr(c)
			return err
		})
		return ret, err
	case "if_statement":
		cond, err := l.cond(n)
		if err != nil {
			return nil, err
		}
		then, err := l.body(n, "consequence")
		if err != nil {
			return nil, err
		}
		s := &ast.IfStmt{At: at, Cond: cond, Then: then}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			// newer grammars wrap the else branch in an else_clause
			if alt.Kind() == "else_clause" {
				if s.Else, err = l.body(alt, ""); err != nil {
					return nil, err
				}
				return s, nil
			}
			if s.Else, err = l.orEmpty(alt); err != nil {
				return nil, err
			}
		}
		return s, nil
	case "while_statement":
		cond, err := l.cond(n)
		if err != nil {
			return nil, err
		}
		body, err := l.body(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{At: at, Cond: cond, Body: body}, nil
	case "declaration":
		return nil, errorAt(n, "declaration not allowed here")
	}
	return nil, unsupported(n)
}

// body lowers the statement in field name of n, or the first named child
// when name is empty.
func (l *lowerer) body(n *sitter.Node, name string) (ast.Stmt, *diag.ParseError) {
	var c *sitter.Node
	if name == "" {
		named(n, func(x *sitter.Node) *diag.ParseError {
			if c == nil {
				c = x
			}
			return nil
		})
		if c == nil {
			return nil, errorAt(n, "else without a statement")
		}
	} else {
		var err *diag.ParseError
		if c, err = field(n, name); err != nil {
			return nil, err
		}
	}
	return l.orEmpty(c)
}

func (l *lowerer) orEmpty(n *sitter.Node) (ast.Stmt, *diag.ParseError) {
	s, err := l.stmt(n)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &ast.BlockStmt{}, nil
	}
	return s, nil
}

func (l *lowerer) cond(n *sitter.Node) (ast.Expr, *diag.ParseError) {
	c, err := field(n, "condition")
	if err != nil {
		return nil, err
	}
	return l.expr(c)
}

// exprStmt accepts the expression statements of the subset: assignments,
// calls and print.
func (l *lowerer) exprStmt(e *sitter.Node) (ast.Stmt, *diag.ParseError) {
	at := pos(e)
	switch e.Kind() {
	case "assignment_expression":
		if op := e.ChildByFieldName("operator"); op != nil && op.Kind() != "=" {
			return nil, errorAt(op, "unsupported assignment operator %s", op.Kind())
		}
		left, err := field(e, "left")
		if err != nil {
			return nil, err
		}
		right, err := field(e, "right")
		if err != nil {
			return nil, err
		}
		v, err := l.expr(right)
		if err != nil {
			return nil, err
		}
		switch left.Kind() {
		case "identifier":
			return &ast.AssignStmt{At: at, Name: l.text(left), Value: v}, nil
		case "subscript_expression":
			name, idx, err := l.subscript(left)
			if err != nil {
				return nil, err
			}
			return &ast.AssignStmt{At: at, Name: name, Index: idx, Value: v}, nil
		}
		return nil, unsupported(left)
	case "call_expression":
		call, err := l.call(e)
		if err != nil {
			return nil, err
		}
		if call.Name == "print" {
			if len(call.Args) != 1 {
				return nil, errorAt(e, "print takes exactly one argument")
			}
			return &ast.PrintStmt{At: at, Value: call.Args[0]}, nil
		}
		return &ast.CallStmt{At: at, Call: call}, nil
	}
	return nil, errorAt(e, "expected assignment or call, got %s", e.Kind())
}
