package nfield

import (
	"errors"
	"fmt"
	"math/big"
	"unicode"
)

// Sentinel errors for field construction and use.
var (
	// ErrVarName indicates an empty or non-alphabetic generator variable name.
	ErrVarName = errors.New("nfield: generator variable must be a nonempty run of letters")

	// ErrDegree indicates a defining polynomial of degree below 1.
	ErrDegree = errors.New("nfield: defining polynomial must have degree at least 1")

	// ErrNotMonic indicates a defining polynomial whose leading coefficient is not 1.
	ErrNotMonic = errors.New("nfield: defining polynomial must be monic")

	// ErrWrongField indicates a value constructed by a different Field.
	ErrWrongField = errors.New("nfield: value belongs to a different field")
)

// Field is a number field Q[x]/(f) for a monic integral polynomial f,
// with elements represented over the power basis of the generator.
//
// A Field is immutable after construction and safe for concurrent use.
type Field struct {
	varName string
	deg     int
	mod     []*big.Int // f's coefficients, constant first; mod[deg] == 1
}

// New constructs the number field defined by the monic integral polynomial
// whose coefficients are given constant-term first. varName is the name the
// element parser recognizes as the field generator.
//
// Returns ErrVarName, ErrDegree or ErrNotMonic on invalid input.
func New(varName string, coeffs []*big.Int) (*Field, error) {
	if varName == "" {
		return nil, ErrVarName
	}
	for _, r := range varName {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", ErrVarName, varName)
		}
	}
	deg := len(coeffs) - 1
	if deg < 1 {
		return nil, ErrDegree
	}
	if coeffs[deg] == nil || coeffs[deg].Cmp(oneInt) != 0 {
		return nil, ErrNotMonic
	}
	mod := make([]*big.Int, deg+1)
	for i, c := range coeffs {
		if c == nil {
			mod[i] = new(big.Int)
		} else {
			mod[i] = new(big.Int).Set(c)
		}
	}
	return &Field{varName: varName, deg: deg, mod: mod}, nil
}

// NewInts is a convenience wrapper around New for small coefficients,
// given constant-term first: NewInts("a", -1, -1, 1) defines a^2 - a - 1.
func NewInts(varName string, coeffs ...int64) (*Field, error) {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		c[i] = big.NewInt(v)
	}
	return New(varName, c)
}

// Degree reports the degree of the field over Q.
func (f *Field) Degree() int { return f.deg }

// Var reports the generator variable name.
func (f *Field) Var() string { return f.varName }

// Modulus returns a copy of the defining polynomial's coefficients,
// constant term first.
func (f *Field) Modulus() []*big.Int {
	out := make([]*big.Int, len(f.mod))
	for i, c := range f.mod {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

var oneInt = big.NewInt(1)
