// Package value defines the runtime values of a running program.
package value

import (
	"strconv"
	"strings"
)

// Value is one of Int, Float, Char, Bool or Array. Values are immutable.
type Value interface {
	Kind() Kind
	// String is the form used by the debug console.
	String() string
	// Display is the form written by print.
	Display() string
	value()
}

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindChar
	KindBool
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

type Int int32

type Float float32

type Char rune

type Bool bool

// Array is a fixed length sequence. Use With to produce a modified copy.
type Array []Value

func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }
func (Char) Kind() Kind  { return KindChar }
func (Bool) Kind() Kind  { return KindBool }
func (Array) Kind() Kind { return KindArray }

func (Int) value()   {}
func (Float) value() {}
func (Char) value()  {}
func (Bool) value()  {}
func (Array) value() {}

func (v Int) String() string  { return strconv.Itoa(int(v)) }
func (v Int) Display() string { return v.String() }

func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func (v Float) Display() string { return v.String() }

func (v Char) String() string  { return strconv.QuoteRune(rune(v)) }
func (v Char) Display() string { return string(rune(v)) }

func (v Bool) String() string  { return strconv.FormatBool(bool(v)) }
func (v Bool) Display() string { return v.String() }

func (a Array) String() string {
	if s, ok := a.Text(); ok {
		return strconv.Quote(s)
	}
	return a.join(Value.String)
}

func (a Array) Display() string {
	if s, ok := a.Text(); ok {
		return s
	}
	return a.join(Value.Display)
}

func (a Array) join(f func(Value) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Text returns the contents of a char array up to its first NUL.
func (a Array) Text() (string, bool) {
	if len(a) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, v := range a {
		c, ok := v.(Char)
		if !ok {
			return "", false
		}
		if c == 0 {
			break
		}
		b.WriteRune(rune(c))
	}
	return b.String(), true
}

// With returns a copy of a with slot i replaced by v.
func (a Array) With(i int, v Value) Array {
	out := make(Array, len(a))
	copy(out, a)
	out[i] = v
	return out
}

// Zeros returns an array of n Int(0) slots.
func Zeros(n int) Array {
	out := make(Array, n)
	for i := range out {
		out[i] = Int(0)
	}
	return out
}

// StringOf builds a NUL terminated char array.
func StringOf(s string) Array {
	out := make(Array, 0, len(s)+1)
	for _, r := range s {
		out = append(out, Char(r))
	}
	return append(out, Char(0))
}

// Truthy reports whether v counts as true for the logical operators.
func Truthy(v Value) (bool, bool) {
	switch v := v.(type) {
	case Bool:
		return bool(v), true
	case Int:
		return v != 0, true
	case Float:
		return v != 0, true
	case Char:
		return v != 0, true
	}
	return false, false
}
