// Package check validates a parsed program and builds its global tables.
package check

import (
	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/env"
)

// Check makes one pass over the top-level elements in source order. All
// problems are collected; the error is a *diag.CheckerError.
func Check(prog *ast.Program) (*env.FuncTab, *env.SymTab, error) {
	c := &checker{
		funcs:   env.NewFuncTab(),
		globals: env.NewSymTab(),
		errs:    &diag.CheckerError{},
	}
	for _, d := range prog.Decls {
		c.decl(d)
	}
	if _, ok := c.funcs.Func("main"); !ok {
		c.errs.Add(ast.NoPos, "Function 'main' missing")
	}
	if c.errs.Len() > 0 {
		return nil, nil, c.errs
	}
	return c.funcs, c.globals, nil
}

type checker struct {
	funcs   *env.FuncTab
	globals *env.SymTab
	errs    *diag.CheckerError
}

func (c *checker) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.VarDecl:
		c.global(d)
	case *ast.Proto:
		if prev, ok := c.funcs.Lookup(d.Name); ok && prev.Defined() {
			c.errs.Add(d.At, "Function '%s' already defined", d.Name)
			return
		}
		c.funcs.Insert(d, nil)
	case *ast.FuncDecl:
		if prev, ok := c.funcs.Lookup(d.Proto.Name); ok && prev.Defined() {
			c.errs.Add(d.Pos(), "Function '%s' already declared", d.Proto.Name)
			return
		}
		c.funcs.Insert(d.Proto, d)
	case *ast.BadDecl:
		// reported by the parser
	default:
		c.errs.Add(d.Pos(), "unexpected top-level element %T", d)
	}
}

func (c *checker) global(d *ast.VarDecl) {
	if c.globals.Declared(d.Name) {
		c.errs.Add(d.At, "Variable '%s' already declared", d.Name)
		return
	}
	size := env.NoSize
	if d.Size != nil {
		n, ok := Fold(d.Size)
		switch {
		case !ok:
			c.errs.Add(d.Size.Pos(), "Size of array '%s' must be a constant integer", d.Name)
			return
		case n < 0:
			c.errs.Add(d.Size.Pos(), "Size of array '%s' is negative", d.Name)
			return
		}
		size = int(n)
	}
	c.globals.Insert(d.Name, d.Type, size, nil, d.At)
}
