package nfield

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/arithlab/hmfield/matrix"
)

// Sentinel errors for ideal construction.
var (
	// ErrBadGenerator indicates an opaque generator value that is not an Elem.
	ErrBadGenerator = errors.New("nfield: generator is not a field element")

	// ErrNotIntegral indicates an ideal generator with non-integral
	// power-basis coordinates, i.e. one outside Z[a].
	ErrNotIntegral = errors.New("nfield: ideal generator is not integral")

	// ErrZeroIdeal indicates a generating pair that spans the zero ideal.
	ErrZeroIdeal = errors.New("nfield: generators span the zero ideal")
)

// Ideal is a nonzero ideal of the ring of integers Z[a], stored with the
// generating pair it was built from and its Hermite normal form.
//
// An Ideal is immutable after construction and safe for concurrent use.
type Ideal struct {
	f    *Field
	n    *big.Int
	gen  Elem
	hnf  *matrix.Dense
	norm *big.Int
	min  *big.Int
	key  string
}

// Ideal constructs the ideal generated by the rational integer n and the
// field element gen, given as an opaque value produced by Element (or as a
// plain Elem). This is collaborator operation "ideal-from-generators": the
// ideal is the Z-span of {n·a^i} ∪ {gen·a^i} for the power basis a^i.
//
// Returns ErrBadGenerator for a value that is not an Elem, ErrNotIntegral
// when gen lies outside Z[a], and ErrZeroIdeal when n and gen are both zero.
func (f *Field) Ideal(n *big.Int, gen any) (*Ideal, error) {
	e, ok := gen.(Elem)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrBadGenerator, gen)
	}
	return f.idealOf(n, e)
}

func (f *Field) idealOf(n *big.Int, gen Elem) (*Ideal, error) {
	if len(gen.c) != f.deg {
		return nil, ErrWrongField
	}
	if n == nil {
		n = new(big.Int)
	}
	d := f.deg
	m := matrix.NewDense(2*d, d)
	for i := 0; i < d; i++ {
		m.Set(i, i, n)
	}
	e := gen
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			r := e.c[j]
			if !r.IsInt() {
				return nil, fmt.Errorf("%w: coordinate %d of a^%d·gen is %v", ErrNotIntegral, j, i, r)
			}
			m.Set(d+i, j, r.Num())
		}
		e = f.MulGen(e)
	}

	h, err := matrix.HNF(m)
	if err != nil {
		if errors.Is(err, matrix.ErrRankDeficient) {
			return nil, ErrZeroIdeal
		}
		return nil, err
	}

	norm := big.NewInt(1)
	for i := 0; i < d; i++ {
		norm.Mul(norm, h.At(i, i))
	}

	return &Ideal{
		f:    f,
		n:    new(big.Int).Set(n),
		gen:  gen,
		hnf:  h,
		norm: norm,
		min:  h.At(0, 0),
		key:  canonicalKey(h),
	}, nil
}

// Norm returns the absolute norm of the ideal, the index of its lattice in
// Z[a].
func (i *Ideal) Norm() *big.Int { return new(big.Int).Set(i.norm) }

// LeastInteger returns the least positive rational integer contained in the
// ideal.
func (i *Ideal) LeastInteger() *big.Int { return new(big.Int).Set(i.min) }

// CanonicalKey returns a serialization of the ideal's Hermite normal form.
// Keys of ideals of the same field are equal exactly when the ideals are
// equal, and byte-wise comparison of keys is a strict total order that
// ranks HNF entries numerically, row by row.
func (i *Ideal) CanonicalKey() string { return i.key }

// HNF returns a copy of the ideal's Hermite normal form over the power
// basis, rows as generators, lower triangular.
func (i *Ideal) HNF() *matrix.Dense {
	d := i.hnf.Rows()
	out := matrix.NewDense(d, d)
	for r := 0; r < d; r++ {
		for c := 0; c < d; c++ {
			out.Set(r, c, i.hnf.At(r, c))
		}
	}
	return out
}

// Generators returns the generating pair the ideal was constructed from.
func (i *Ideal) Generators() (*big.Int, Elem) {
	return new(big.Int).Set(i.n), i.gen
}

// Equal reports whether two ideals of the same field coincide.
func (i *Ideal) Equal(j *Ideal) bool {
	return i.f == j.f && i.key == j.key
}

// canonicalKey serializes an HNF matrix entry by entry, each entry as its
// decimal digits preceded by a 3-digit length header. All entries are
// non-negative, so lexicographic order on the result matches entry-wise
// numeric order.
func canonicalKey(h *matrix.Dense) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", h.Cols())
	for r := 0; r < h.Rows(); r++ {
		for c := 0; c < h.Cols(); c++ {
			s := h.At(r, c).Text(10)
			fmt.Fprintf(&b, "%03d%s;", len(s), s)
		}
	}
	return b.String()
}
