package types

// Kind is one of the declared types the language knows about.
type Kind int

const (
	Char Kind = iota
	Int
	Float
	Ref
	Void // only valid as a function return type
)

// Type is a declared type. Elem is non-nil only when K==Ref, which is how
// one-dimensional arrays are described ("reference to element type").
type Type struct {
	K    Kind
	Elem *Type
}

func IntT() Type   { return Type{K: Int} }
func CharT() Type  { return Type{K: Char} }
func FloatT() Type { return Type{K: Float} }
func VoidT() Type  { return Type{K: Void} }

func ReferenceTo(elem Type) Type { return Type{K: Ref, Elem: &elem} }

func (t Type) IsRef() bool  { return t.K == Ref }
func (t Type) IsVoid() bool { return t.K == Void }

// IsScalar reports whether values of t fit in a single slot.
func (t Type) IsScalar() bool {
	switch t.K {
	case Char, Int, Float:
		return true
	default:
		return false
	}
}

// ElemType returns the element type of a reference, or t itself.
func (t Type) ElemType() Type {
	if t.K == Ref && t.Elem != nil {
		return *t.Elem
	}
	return t
}

func (t Type) Equal(o Type) bool {
	if t.K != o.K {
		return false
	}
	if t.K != Ref {
		return true
	}
	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}
	return t.Elem.Equal(*o.Elem)
}

func (t Type) String() string {
	switch t.K {
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Void:
		return "void"
	case Ref:
		if t.Elem == nil {
			return "?[]"
		}
		return t.Elem.String() + "[]"
	default:
		return "unknown"
	}
}

// FromKeyword maps a type keyword to its Type.
func FromKeyword(kw string) (Type, bool) {
	switch kw {
	case "int":
		return IntT(), true
	case "char":
		return CharT(), true
	case "float":
		return FloatT(), true
	case "void":
		return VoidT(), true
	}
	return Type{}, false
}
