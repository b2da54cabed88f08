package nfield

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// ErrParse indicates a malformed element expression.
var ErrParse = errors.New("nfield: malformed element expression")

// ParseElement parses an element written as a polynomial expression in the
// field's generator variable, e.g. "0", "-a", "2*a-1" or "1/2*a^2+3/2".
//
// The accepted grammar is a signed sum of terms, each term an optional
// rational coefficient (integer or integer/integer), optionally followed by
// '*' and a power of the generator ("a" or "a^k" with 0 <= k < degree).
// Whitespace is ignored. Exponents at or above the field degree are
// rejected: stored elements are already reduced to the power basis.
func (f *Field) ParseElement(s string) (Elem, error) {
	src := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if src == "" {
		return Elem{}, fmt.Errorf("%w: empty input", ErrParse)
	}

	e := f.Zero()
	i := 0
	for i < len(src) {
		neg := false
		switch src[i] {
		case '+':
			i++
		case '-':
			neg = true
			i++
		default:
			if i > 0 {
				return Elem{}, fmt.Errorf("%w: expected '+' or '-' at %q", ErrParse, src[i:])
			}
		}
		if i >= len(src) {
			return Elem{}, fmt.Errorf("%w: dangling sign in %q", ErrParse, s)
		}

		coef := new(big.Rat).SetInt64(1)
		haveCoef := false
		if isDigit(src[i]) {
			num, rest, err := scanInt(src[i:])
			if err != nil {
				return Elem{}, err
			}
			i = len(src) - len(rest)
			den := big.NewInt(1)
			if i < len(src) && src[i] == '/' {
				i++
				if i >= len(src) || !isDigit(src[i]) {
					return Elem{}, fmt.Errorf("%w: missing denominator in %q", ErrParse, s)
				}
				den, rest, err = scanInt(src[i:])
				if err != nil {
					return Elem{}, err
				}
				i = len(src) - len(rest)
				if den.Sign() == 0 {
					return Elem{}, fmt.Errorf("%w: zero denominator in %q", ErrParse, s)
				}
			}
			coef.SetFrac(num, den)
			haveCoef = true
		}

		wantVar := false
		if i < len(src) && src[i] == '*' {
			if !haveCoef {
				return Elem{}, fmt.Errorf("%w: '*' without coefficient in %q", ErrParse, s)
			}
			wantVar = true
			i++
		}

		pow := 0
		if i < len(src) && isLetterByte(src[i]) {
			j := i
			for j < len(src) && isLetterByte(src[j]) {
				j++
			}
			if name := src[i:j]; name != f.varName {
				return Elem{}, fmt.Errorf("%w: unknown variable %q (field generator is %q)", ErrParse, name, f.varName)
			}
			i = j
			pow = 1
			if pow >= f.deg {
				return Elem{}, fmt.Errorf("%w: generator power in a degree-%d field", ErrParse, f.deg)
			}
			if i < len(src) && src[i] == '^' {
				i++
				if i >= len(src) || !isDigit(src[i]) {
					return Elem{}, fmt.Errorf("%w: missing exponent in %q", ErrParse, s)
				}
				exp, rest, err := scanInt(src[i:])
				if err != nil {
					return Elem{}, err
				}
				i = len(src) - len(rest)
				if !exp.IsInt64() || exp.Int64() >= int64(f.deg) {
					return Elem{}, fmt.Errorf("%w: exponent %v out of range for degree %d", ErrParse, exp, f.deg)
				}
				pow = int(exp.Int64())
			}
		} else if wantVar {
			return Elem{}, fmt.Errorf("%w: expected generator after '*' in %q", ErrParse, s)
		} else if !haveCoef {
			return Elem{}, fmt.Errorf("%w: unexpected %q", ErrParse, src[i:])
		}

		if neg {
			coef.Neg(coef)
		}
		e.c[pow].Add(e.c[pow], coef)
	}

	return e, nil
}

// Element parses an element expression and returns it as an opaque value.
// This is the collaborator form of ParseElement consumed by the ideals
// package; native callers should prefer ParseElement for the typed result.
func (f *Field) Element(s string) (any, error) {
	return f.ParseElement(s)
}

// scanInt reads a leading run of decimal digits and returns the remainder
// of the input.
func scanInt(s string) (*big.Int, string, error) {
	j := 0
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	v, ok := new(big.Int).SetString(s[:j], 10)
	if !ok {
		return nil, "", fmt.Errorf("%w: bad integer %q", ErrParse, s[:j])
	}
	return v, s[j:], nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetterByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
