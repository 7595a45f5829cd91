package env

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/types"
	"github.com/mfaerevaag/semic/internal/value"
)

func TestFuncTab(t *testing.T) {
	tab := NewFuncTab()
	proto := &ast.Proto{Ret: types.IntT(), Name: "f"}

	_, replaced := tab.Insert(proto, nil)
	be.True(t, !replaced)
	_, ok := tab.Func("f")
	be.True(t, !ok)
	p, ok := tab.Proto("f")
	be.True(t, ok)
	be.Equal(t, p, proto)

	fn := &ast.FuncDecl{Proto: proto}
	prev, replaced := tab.Insert(proto, fn)
	be.True(t, replaced)
	be.True(t, !prev.Defined())
	got, ok := tab.Func("f")
	be.True(t, ok)
	be.Equal(t, got, fn)
	be.Equal(t, tab.Len(), 1)
}

func TestEnvResolve(t *testing.T) {
	globals := NewSymTab()
	globals.Insert("g", types.IntT(), NoSize, value.Int(1), ast.NoPos)
	e := New(NewFuncTab(), globals)
	e.Locals.PushCallFrame()
	e.Locals.Insert("l", types.IntT(), NoSize, nil, ast.NoPos)

	be.Err(t, e.SetValue("g", value.Int(5), 1), nil)
	be.Err(t, e.SetValue("l", value.Int(6), 2), nil)
	be.Err(t, e.SetValue("z", value.Int(7), 3), "Variable 'z' not declared")

	ent, err := e.Resolve("g", 0)
	be.Err(t, err, nil)
	be.Equal(t, ent.Value(), value.Value(value.Int(5)))
	ent, err = e.Resolve("l", 0)
	be.Err(t, err, nil)
	be.Equal(t, ent.Value(), value.Value(value.Int(6)))

	tab, ok := e.Scope("g")
	be.True(t, ok)
	be.Equal(t, tab, globals)
}
