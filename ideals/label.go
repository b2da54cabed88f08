package ideals

import (
	"math/big"
	"strconv"
)

// LabelAll decodes every serialized ideal in order and assigns each its
// label "N.k": N the decimal norm, k the 1-based rank of the ideal among
// those of norm N, counted in input order.
//
// Precondition (trusted, not checked): the input is grouped by ascending
// norm and, within one norm, sorted by the field's canonical ideal order.
// The rank counter resets to 1 whenever the norm changes, so an input that
// violates the precondition silently produces duplicate or out-of-order
// labels. The database pipeline guarantees the order; see the package
// documentation.
//
// The first decode or integrity failure aborts and is returned unchanged.
func LabelAll[I Ideal](f Field[I], encoded []string) ([]Entry[I], error) {
	if f == nil {
		return nil, ErrNilField
	}
	entries := make([]Entry[I], 0, len(encoded))
	norm := new(big.Int)
	rank := 0
	for _, s := range encoded {
		d, err := Decode(f, s)
		if err != nil {
			return nil, err
		}
		if d.Norm.Cmp(norm) != 0 {
			norm = d.Norm
			rank = 1
		} else {
			rank++
		}
		entries = append(entries, Entry[I]{
			Label:      d.Norm.String() + "." + strconv.Itoa(rank),
			Descriptor: d,
		})
	}
	return entries, nil
}
