package env

import (
	"fmt"

	"github.com/mfaerevaag/semic/internal/ast"
	"github.com/mfaerevaag/semic/internal/diag"
	"github.com/mfaerevaag/semic/internal/types"
	"github.com/mfaerevaag/semic/internal/value"
)

// NoSize marks an entry that is not a sized array.
const NoSize = -1

// Record is one assignment. Value is nil for a declaration without a value.
type Record struct {
	Value value.Value
	Pos   ast.Pos
}

type Entry struct {
	Type    types.Type
	Size    int
	History []Record
}

// Value is the most recent value, or nil when never assigned.
func (e *Entry) Value() value.Value {
	return e.History[len(e.History)-1].Value
}

type frame struct {
	call bool
	vars map[string]*Entry
}

// SymTab is a stack of frames, innermost last. Call frames bound lookups, so
// a callee never sees its caller's variables. Block frames nest inside them.
type SymTab struct {
	frames []*frame
}

func NewSymTab() *SymTab {
	return &SymTab{frames: []*frame{newFrame(true)}}
}

func newFrame(call bool) *frame {
	return &frame{call: call, vars: make(map[string]*Entry)}
}

// Insert declares name in the innermost frame, replacing any entry of the
// same name there.
func (s *SymTab) Insert(name string, t types.Type, size int, v value.Value, pos ast.Pos) {
	top := s.frames[len(s.frames)-1]
	top.vars[name] = &Entry{Type: t, Size: size, History: []Record{{Value: v, Pos: pos}}}
}

// Declared reports whether name is in the innermost frame.
func (s *SymTab) Declared(name string) bool {
	_, ok := s.frames[len(s.frames)-1].vars[name]
	return ok
}

// Lookup searches from the innermost frame out to the nearest call frame.
func (s *SymTab) Lookup(name string) (*Entry, bool) {
	return lookup(s.frames, len(s.frames)-1, name)
}

func lookup(frames []*frame, from int, name string) (*Entry, bool) {
	for i := from; i >= 0; i-- {
		if e, ok := frames[i].vars[name]; ok {
			return e, true
		}
		if frames[i].call {
			break
		}
	}
	return nil, false
}

func (s *SymTab) Type(name string) (types.Type, int, bool) {
	e, ok := s.Lookup(name)
	if !ok {
		return types.Type{}, NoSize, false
	}
	return e.Type, e.Size, true
}

// Value returns the current value of name. The value is nil when name is
// declared but unassigned.
func (s *SymTab) Value(name string) (value.Value, bool) {
	e, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}
	return e.Value(), true
}

// ValueInEnclosing looks name up in the frames of the caller of the
// current call.
func (s *SymTab) ValueInEnclosing(name string) (value.Value, bool) {
	i := len(s.frames) - 1
	for i >= 0 && !s.frames[i].call {
		i--
	}
	if i <= 0 {
		return nil, false
	}
	e, ok := lookup(s.frames, i-1, name)
	if !ok {
		return nil, false
	}
	return e.Value(), true
}

func (s *SymTab) History(name string) ([]Record, bool) {
	e, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}
	return e.History, true
}

// SetValue appends v to the history of name.
func (s *SymTab) SetValue(name string, v value.Value, pos ast.Pos) error {
	e, ok := s.Lookup(name)
	if !ok {
		return notDeclared(name, pos)
	}
	e.History = append(e.History, Record{Value: v, Pos: pos})
	return nil
}

// SetElem replaces slot i of the array name and appends the new array to its
// history. The first write materializes the array with Int(0) in every
// other slot.
func (s *SymTab) SetElem(name string, i int, v value.Value, pos ast.Pos) error {
	e, ok := s.Lookup(name)
	if !ok {
		return notDeclared(name, pos)
	}
	var arr value.Array
	switch cur := e.Value().(type) {
	case value.Array:
		arr = cur
	case nil:
		if e.Size == NoSize {
			return diag.Runtimef(pos, "Variable '%s' is not an array", name)
		}
		arr = value.Zeros(e.Size)
	default:
		return diag.Runtimef(pos, "Expected array, got %s", cur)
	}
	if i < 0 || i >= len(arr) {
		return OutOfBounds(name, i, len(arr), pos)
	}
	e.History = append(e.History, Record{Value: arr.With(i, v), Pos: pos})
	return nil
}

func (s *SymTab) PushFrame()     { s.frames = append(s.frames, newFrame(false)) }
func (s *SymTab) PushCallFrame() { s.frames = append(s.frames, newFrame(true)) }

func (s *SymTab) PopFrame() error {
	if len(s.frames) <= 1 {
		return diag.Unknownf("Cannot pop frame of empty symbol table")
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Depth is the number of frames, the root frame included.
func (s *SymTab) Depth() int { return len(s.frames) }

func notDeclared(name string, pos ast.Pos) error {
	return diag.Runtimef(pos, "Variable '%s' not declared", name)
}

// OutOfBounds is the error for indexing name of length n at i.
func OutOfBounds(name string, i, n int, pos ast.Pos) error {
	return &diag.RuntimeError{
		Msg: fmt.Sprintf("Index %d out of bounds for '%s', valid range is 0..%d", i, name, n),
		Pos: pos,
	}
}
