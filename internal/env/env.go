package env

import (
	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/value"
)

// Env bundles the tables of a run. Locals holds the frames of the active
// calls; Globals holds the single global frame.
type Env struct {
	Funcs   *FuncTab
	Globals *SymTab
	Locals  *SymTab
}

func New(funcs *FuncTab, globals *SymTab) *Env {
	return &Env{Funcs: funcs, Globals: globals, Locals: NewSymTab()}
}

// Scope returns the table that resolves name, locals first.
func (e *Env) Scope(name string) (*SymTab, bool) {
	if _, ok := e.Locals.Lookup(name); ok {
		return e.Locals, true
	}
	if _, ok := e.Globals.Lookup(name); ok {
		return e.Globals, true
	}
	return nil, false
}

// Resolve finds the entry for name, locals first.
func (e *Env) Resolve(name string, pos ast.Pos) (*Entry, error) {
	if ent, ok := e.Locals.Lookup(name); ok {
		return ent, nil
	}
	if ent, ok := e.Globals.Lookup(name); ok {
		return ent, nil
	}
	return nil, notDeclared(name, pos)
}

func (e *Env) SetValue(name string, v value.Value, pos ast.Pos) error {
	tab, ok := e.Scope(name)
	if !ok {
		return notDeclared(name, pos)
	}
	return tab.SetValue(name, v, pos)
}

func (e *Env) SetElem(name string, i int, v value.Value, pos ast.Pos) error {
	tab, ok := e.Scope(name)
	if !ok {
		return notDeclared(name, pos)
	}
	return tab.SetElem(name, i, v, pos)
}

