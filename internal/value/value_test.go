package value

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"

	"github.com/mfaerevaag/semic/internal/types"
)

func TestString(t *testing.T) {
	tests := []struct {
		v       Value
		str     string
		display string
	}{
		{Int(-4), "-4", "-4"},
		{Float(3), "3.0", "3.0"},
		{Float(2.5), "2.5", "2.5"},
		{Char('a'), "'a'", "a"},
		{Bool(true), "true", "true"},
		{Array{Int(1), Int(2)}, "[1, 2]", "[1, 2]"},
		{StringOf("hi"), `"hi"`, "hi"},
		{Array{}, "[]", "[]"},
	}
	for _, tt := range tests {
		be.Equal(t, tt.v.String(), tt.str)
		be.Equal(t, tt.v.Display(), tt.display)
	}
}

func TestWith(t *testing.T) {
	a := Zeros(3)
	b := a.With(1, Int(5))
	be.Equal(t, a.String(), "[0, 0, 0]")
	be.Equal(t, b.String(), "[0, 5, 0]")
}

func TestStringOf(t *testing.T) {
	s := StringOf("ab")
	be.Equal(t, len(s), 3)
	be.Equal(t, s[2], Value(Char(0)))
}

func TestCast(t *testing.T) {
	tests := []struct {
		v    Value
		to   types.Type
		want Value
	}{
		{Float(3.9), types.IntT(), Int(3)},
		{Int(3), types.FloatT(), Float(3)},
		{Bool(true), types.IntT(), Int(1)},
		{Bool(false), types.IntT(), Int(0)},
		{Int(10), types.CharT(), Char('a')},
		{Char('f'), types.IntT(), Int(15)},
		{Char('7'), types.IntT(), Int(7)},
		{Char('x'), types.CharT(), Char('x')},
		{Int(7), types.ReferenceTo(types.CharT()), Int(7)},
	}
	for _, tt := range tests {
		got, err := Cast(tt.v, tt.to)
		be.Err(t, err, nil)
		be.Equal(t, got, tt.want)
	}
}

func TestCastRoundTrip(t *testing.T) {
	i, err := Cast(Float(3.9), types.IntT())
	be.Err(t, err, nil)
	f, err := Cast(i, types.FloatT())
	be.Err(t, err, nil)
	be.Equal(t, f, Value(Float(3)))
}

func TestCastFails(t *testing.T) {
	tests := []struct {
		v  Value
		to types.Type
	}{
		{Int(16), types.CharT()},
		{Char('z'), types.IntT()},
		{Bool(true), types.FloatT()},
		{Float(1), types.CharT()},
	}
	for _, tt := range tests {
		_, err := Cast(tt.v, tt.to)
		var cerr *CastError
		be.True(t, errors.As(err, &cerr))
	}
}

func TestTruthy(t *testing.T) {
	b, ok := Truthy(Int(2))
	be.True(t, b && ok)
	b, ok = Truthy(Float(0))
	be.True(t, !b && ok)
	_, ok = Truthy(Array{})
	be.True(t, !ok)
}
