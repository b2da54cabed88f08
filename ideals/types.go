package ideals

import (
	"errors"
	"math/big"
)

// Sentinel errors for decoding and index construction.
var (
	// ErrNilField indicates that no field collaborator was supplied.
	ErrNilField = errors.New("ideals: field is nil")

	// ErrNilIndex indicates a conjugation table was requested on a nil index.
	ErrNilIndex = errors.New("ideals: index is nil")

	// ErrNilAutomorphism indicates a nil automorphism in the input list.
	ErrNilAutomorphism = errors.New("ideals: automorphism is nil")

	// ErrEncoding indicates a serialized ideal that is not of the form
	// "[N,n,alpha]". Encodings come from the upstream data pipeline, not
	// from users, so this is a data fault with no graceful recovery.
	ErrEncoding = errors.New("ideals: malformed ideal encoding")

	// ErrIntegrity indicates that a stored norm or least integer disagrees
	// with the ideal actually constructed from the stored generators. This
	// is the one check tying the serialized data to its computed ideal;
	// a failure aborts construction of the enclosing index.
	ErrIntegrity = errors.New("ideals: stored invariants disagree with the constructed ideal")

	// ErrBadLimit indicates a negative iteration limit.
	ErrBadLimit = errors.New("ideals: limit must be non-negative")
)

// Element is an opaque field element as produced by the collaborator's
// parser. The codec only carries it between Field.Element and Field.Ideal.
type Element = any

// Ideal is the contract an algebraic ideal must satisfy for labeling.
//
// CanonicalKey must return a string that is identical for equal ideals of
// the same field and distinct for distinct ones, such that byte-wise
// comparison of keys is a strict total order. Everything in this package
// orders and compares ideals through this key.
type Ideal interface {
	// Norm returns the absolute norm of the ideal.
	Norm() *big.Int
	// LeastInteger returns the least positive rational integer in the ideal.
	LeastInteger() *big.Int
	// CanonicalKey returns the ideal's canonical comparison key.
	CanonicalKey() string
}

// Field is the number-field arithmetic collaborator the codec relies on.
// The type parameter fixes the concrete ideal type the field produces,
// so the index built on top is fully typed.
type Field[I Ideal] interface {
	// Element parses a field element written in the field's generator
	// variable.
	Element(s string) (Element, error)
	// Ideal constructs the ideal generated by the rational integer n and
	// the parsed element gen.
	Ideal(n *big.Int, gen Element) (I, error)
}

// Automorphism maps ideals to their images under a field automorphism.
type Automorphism[I Ideal] interface {
	// Image returns the image ideal, with its canonical form recomputed.
	Image(idl I) (I, error)
}

// Descriptor is a decoded "[N,n,alpha]" entry: the stored invariants, the
// parsed second generator, the constructed ideal, and its canonical key.
type Descriptor[I Ideal] struct {
	// Norm is the stored norm N, verified against the ideal.
	Norm *big.Int
	// Least is the stored least positive integer n, verified against the
	// ideal.
	Least *big.Int
	// Gen is the parsed second generator alpha.
	Gen Element
	// Ideal is the ideal constructed as (Least, Gen).
	Ideal I
	// Key is Ideal's canonical key, extracted once.
	Key string
}

// Entry pairs a label with its decoded descriptor.
type Entry[I Ideal] struct {
	// Label is the "N.k" label assigned by LabelAll.
	Label string
	Descriptor[I]
}

// iterOptions configures iteration over an index table.
type iterOptions struct {
	limit int // number of entries to yield; negative means all
}

// IterOption is a functional option for Index iteration.
type IterOption func(*iterOptions)

// WithLimit truncates iteration after n entries. Must be non-negative;
// a negative n panics with ErrBadLimit when the option is applied.
func WithLimit(n int) IterOption {
	return func(o *iterOptions) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.limit = n
	}
}
