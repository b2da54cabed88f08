package ideals

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Decode parses one serialized ideal "[N,n,alpha]" and constructs the
// corresponding ideal through the field collaborator.
//
// The format is fixed: brackets around exactly three comma-separated
// fields, N and n decimal integers, alpha an element expression in the
// field's generator variable. Whitespace is ignored. No validation beyond
// that is attempted; these strings come from the offline data pipeline.
//
// The one load-bearing check: the constructed ideal's norm and least
// positive integer must equal the stored N and n. A mismatch means the
// stored data does not describe the ideal it claims to and is returned as
// ErrIntegrity, a hard failure.
func Decode[I Ideal](f Field[I], s string) (Descriptor[I], error) {
	var zero Descriptor[I]
	if f == nil {
		return zero, ErrNilField
	}

	t := strings.TrimSpace(s)
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return zero, fmt.Errorf("%w: %q is not bracketed", ErrEncoding, s)
	}
	t = strings.ReplaceAll(t[1:len(t)-1], " ", "")
	fields := strings.Split(t, ",")
	if len(fields) != 3 {
		return zero, fmt.Errorf("%w: %q has %d fields, want 3", ErrEncoding, s, len(fields))
	}

	norm, ok := new(big.Int).SetString(fields[0], 10)
	if !ok {
		return zero, fmt.Errorf("%w: bad norm %q", ErrEncoding, fields[0])
	}
	least, ok := new(big.Int).SetString(fields[1], 10)
	if !ok {
		return zero, fmt.Errorf("%w: bad least integer %q", ErrEncoding, fields[1])
	}

	gen, err := f.Element(fields[2])
	if err != nil {
		return zero, fmt.Errorf("ideals: parsing generator %q: %w", fields[2], err)
	}
	idl, err := f.Ideal(least, gen)
	if err != nil {
		return zero, fmt.Errorf("ideals: constructing ideal from %q: %w", s, err)
	}

	if idl.Norm().Cmp(norm) != 0 || idl.LeastInteger().Cmp(least) != 0 {
		return zero, fmt.Errorf("%w: %q constructs norm %v, least integer %v",
			ErrIntegrity, s, idl.Norm(), idl.LeastInteger())
	}

	return Descriptor[I]{
		Norm:  norm,
		Least: least,
		Gen:   gen,
		Ideal: idl,
		Key:   idl.CanonicalKey(),
	}, nil
}

// GeneratorVar reports the generator variable name used by a list of
// encoded ideals: the first maximal run of letters found scanning the
// strings in order. The database record does not name the variable
// separately, so it is recovered from the alpha fields themselves.
// Returns false when no letter occurs (e.g. every alpha is an integer).
func GeneratorVar(encoded []string) (string, bool) {
	for _, s := range encoded {
		for i, r := range s {
			if !unicode.IsLetter(r) {
				continue
			}
			j := i
			for j < len(s) && unicode.IsLetter(rune(s[j])) {
				j++
			}
			return s[i:j], true
		}
	}
	return "", false
}
