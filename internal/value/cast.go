package value

import (
	"fmt"

	"github.com/mfaerevaag/semic/internal/types"
)

const hexDigits = "0123456789abcdef"

// CastError reports a value that cannot be stored in a slot of type To.
type CastError struct {
	From Value
	To   types.Type
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot convert %s %s to %s", e.From.Kind(), e.From, e.To)
}

// Cast converts v to the representation of a slot declared as to.
// Int and Char convert through a single hexadecimal digit.
func Cast(v Value, to types.Type) (Value, error) {
	if to.IsRef() {
		return v, nil
	}
	switch to.K {
	case types.Int:
		switch v := v.(type) {
		case Int:
			return v, nil
		case Float:
			return Int(int32(v)), nil
		case Bool:
			if v {
				return Int(1), nil
			}
			return Int(0), nil
		case Char:
			for i := 0; i < len(hexDigits); i++ {
				if rune(hexDigits[i]) == rune(v) {
					return Int(i), nil
				}
			}
		case Array:
			return v, nil
		}
	case types.Float:
		switch v := v.(type) {
		case Float:
			return v, nil
		case Int:
			return Float(float32(v)), nil
		case Array:
			return v, nil
		}
	case types.Char:
		switch v := v.(type) {
		case Char:
			return v, nil
		case Int:
			if v >= 0 && int(v) < len(hexDigits) {
				return Char(hexDigits[v]), nil
			}
		case Array:
			return v, nil
		}
	}
	return nil, &CastError{From: v, To: to}
}
