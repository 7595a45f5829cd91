// Package tsparser reads programs with tree-sitter's C grammar and lowers the
// concrete syntax tree to the same AST the native parser builds.
package tsparser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/types"
)

// Parse returns a diag.ParseErrors holding one error when the tree has a
// syntax error or uses C outside the supported subset.
func Parse(src string) (*ast.Program, error) {
	p := sitter.NewParser()
	defer p.Close()
	if err := p.SetLanguage(sitter.NewLanguage(tree_sitter_c.Language())); err != nil {
		return nil, fmt.Errorf("tsparser: %w", err)
	}

	source := []byte(src)
	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tsparser: parse returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, diag.ParseErrors{syntaxError(root)}
	}
	l := &lowerer{src: source}
	prog, err := l.program(root)
	if err != nil {
		return nil, diag.ParseErrors{err}
	}
	return prog, nil
}

type lowerer struct {
	src []byte
}

func pos(n *sitter.Node) ast.Pos { return ast.Pos(n.StartByte()) }

func (l *lowerer) text(n *sitter.Node) string { return n.Utf8Text(l.src) }

func errorAt(n *sitter.Node, format string, args ...any) *diag.ParseError {
	return &diag.ParseError{Msg: fmt.Sprintf(format, args...), Pos: pos(n)}
}

func unsupported(n *sitter.Node) *diag.ParseError {
	return errorAt(n, "unsupported %s", strings.ReplaceAll(n.Kind(), "_", " "))
}

// named calls f for each named child that is not a comment.
func named(n *sitter.Node, f func(*sitter.Node) *diag.ParseError) *diag.ParseError {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c == nil || c.Kind() == "comment" {
			continue
		}
		if err := f(c); err != nil {
			return err
		}
	}
	return nil
}

func field(n *sitter.Node, name string) (*sitter.Node, *diag.ParseError) {
	c := n.ChildByFieldName(name)
	if c == nil {
		return nil, errorAt(n, "%s without %s", strings.ReplaceAll(n.Kind(), "_", " "), name)
	}
	return c, nil
}

func (l *lowerer) program(root *sitter.Node) (*ast.Program, *diag.ParseError) {
	prog := &ast.Program{}
	err := named(root, func(n *sitter.Node) *diag.ParseError {
		switch n.Kind() {
		case "declaration":
			ds, err := l.declaration(n)
			prog.Decls = append(prog.Decls, ds...)
			return err
		case "function_definition":
			fn, err := l.function(n)
			if err == nil {
				prog.Decls = append(prog.Decls, fn)
			}
			return err
		}
		return unsupported(n)
	})
	return prog, err
}

func (l *lowerer) baseType(n *sitter.Node) (types.Type, *diag.ParseError) {
	t, err := field(n, "type")
	if err != nil {
		return types.Type{}, err
	}
	if t.Kind() != "primitive_type" {
		return types.Type{}, unsupported(t)
	}
	typ, ok := types.FromKeyword(l.text(t))
	if !ok {
		return types.Type{}, errorAt(t, "unsupported type %s", l.text(t))
	}
	return typ, nil
}

// declarators returns the declarator children of a declaration, in order.
func declarators(n *sitter.Node, typeNode *sitter.Node) []*sitter.Node {
	var ds []*sitter.Node
	named(n, func(c *sitter.Node) *diag.ParseError {
		if c.StartByte() != typeNode.StartByte() {
			ds = append(ds, c)
		}
		return nil
	})
	return ds
}

func (l *lowerer) declaration(n *sitter.Node) ([]ast.Decl, *diag.ParseError) {
	typ, err := l.baseType(n)
	if err != nil {
		return nil, err
	}
	var decls []ast.Decl
	for i, d := range declarators(n, n.ChildByFieldName("type")) {
		at := pos(d)
		if i == 0 {
			at = pos(n)
		}
		switch d.Kind() {
		case "function_declarator":
			proto, err := l.proto(d, typ, at)
			if err != nil {
				return nil, err
			}
			decls = append(decls, proto)
		default:
			name, vt, size, err := l.variable(d, typ)
			if err != nil {
				return nil, err
			}
			decls = append(decls, &ast.VarDecl{At: at, Type: vt, Name: name, Size: size})
		}
	}
	return decls, nil
}

// variable reads an identifier or array declarator.
func (l *lowerer) variable(d *sitter.Node, typ types.Type) (string, types.Type, ast.Expr, *diag.ParseError) {
	if typ.IsVoid() {
		return "", typ, nil, errorAt(d, "variable '%s' declared void", l.text(d))
	}
	switch d.Kind() {
	case "identifier":
		return l.text(d), typ, nil, nil
	case "array_declarator":
		id, err := field(d, "declarator")
		if err != nil {
			return "", typ, nil, err
		}
		if id.Kind() != "identifier" {
			return "", typ, nil, unsupported(id)
		}
		sn, err := field(d, "size")
		if err != nil {
			return "", typ, nil, err
		}
		size, err := l.expr(sn)
		if err != nil {
			return "", typ, nil, err
		}
		return l.text(id), types.ReferenceTo(typ), size, nil
	}
	return "", typ, nil, unsupported(d)
}

func (l *lowerer) proto(d *sitter.Node, ret types.Type, at ast.Pos) (*ast.Proto, *diag.ParseError) {
	id, err := field(d, "declarator")
	if err != nil {
		return nil, err
	}
	if id.Kind() != "identifier" {
		return nil, unsupported(id)
	}
	plist, err := field(d, "parameters")
	if err != nil {
		return nil, err
	}
	proto := &ast.Proto{At: at, Ret: ret, Name: l.text(id)}
	err = named(plist, func(pn *sitter.Node) *diag.ParseError {
		if pn.Kind() != "parameter_declaration" {
			return unsupported(pn)
		}
		typ, err := l.baseType(pn)
		if err != nil {
			return err
		}
		decl := pn.ChildByFieldName("declarator")
		if decl == nil {
			if typ.IsVoid() && plist.NamedChildCount() == 1 {
				return nil
			}
			return errorAt(pn, "parameter without a name")
		}
		if typ.IsVoid() {
			return errorAt(pn, "parameter '%s' declared void", l.text(decl))
		}
		switch decl.Kind() {
		case "identifier":
			proto.Params = append(proto.Params, ast.Param{At: pos(pn), Type: typ, Name: l.text(decl)})
		case "array_declarator":
			if decl.ChildByFieldName("size") != nil {
				return errorAt(decl, "array parameters take no size")
			}
			id, err := field(decl, "declarator")
			if err != nil {
				return err
			}
			proto.Params = append(proto.Params, ast.Param{At: pos(pn), Type: types.ReferenceTo(typ), Name: l.text(id)})
		default:
			return unsupported(decl)
		}
		return nil
	})
	return proto, err
}

func (l *lowerer) function(n *sitter.Node) (*ast.FuncDecl, *diag.ParseError) {
	ret, err := l.baseType(n)
	if err != nil {
		return nil, err
	}
	d, err := field(n, "declarator")
	if err != nil {
		return nil, err
	}
	if d.Kind() != "function_declarator" {
		return nil, unsupported(d)
	}
	proto, err := l.proto(d, ret, pos(n))
	if err != nil {
		return nil, err
	}
	body, err := field(n, "body")
	if err != nil {
		return nil, err
	}
	block, err := l.block(body)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Proto: proto, Body: block.Stmts}, nil
}
