// Package env holds the function table and the scoped symbol tables shared
// by the checker, the evaluator and the debug console.
package env

import "github.com/mfaerevaag/semic/internal/ast"

// FuncEntry is a prototype and, once defined, its definition.
type FuncEntry struct {
	Proto *ast.Proto
	Func  *ast.FuncDecl // nil for a forward declaration
}

func (e FuncEntry) Defined() bool { return e.Func != nil }

// FuncTab maps every function name to its entry. There is no nesting.
type FuncTab struct {
	tab map[string]FuncEntry
}

func NewFuncTab() *FuncTab {
	return &FuncTab{tab: make(map[string]FuncEntry)}
}

// Insert stores the entry for proto.Name and returns the one it replaced.
func (t *FuncTab) Insert(proto *ast.Proto, fn *ast.FuncDecl) (FuncEntry, bool) {
	prev, ok := t.tab[proto.Name]
	t.tab[proto.Name] = FuncEntry{Proto: proto, Func: fn}
	return prev, ok
}

func (t *FuncTab) Lookup(name string) (FuncEntry, bool) {
	e, ok := t.tab[name]
	return e, ok
}

func (t *FuncTab) Proto(name string) (*ast.Proto, bool) {
	e, ok := t.tab[name]
	return e.Proto, ok
}

func (t *FuncTab) Func(name string) (*ast.FuncDecl, bool) {
	e, ok := t.tab[name]
	if !ok || e.Func == nil {
		return nil, false
	}
	return e.Func, true
}

func (t *FuncTab) Len() int { return len(t.tab) }
