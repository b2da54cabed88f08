package ideals

import (
	"fmt"
	"sort"
)

// TableKey identifies one conjugation-table entry: an ideal's label and
// the position of an automorphism in the list the table was built from.
type TableKey struct {
	Label string
	Aut   int
}

// Table maps (label, automorphism position) to the label of the image:
// Table[TableKey{L, g}] is the canonical label of g applied to the ideal
// labeled L. A Table is immutable once built.
type Table map[TableKey]string

// Conjugate computes how each automorphism permutes the labels of the
// general-ideal table.
//
// The table's entries are sorted once by canonical key; this reference
// order is independent of label-assignment order. For each automorphism,
// every ideal is mapped through it, the images are sorted by their
// recomputed canonical keys, and the two sorted views are paired position
// by position. An automorphism permutes the ideal set and the image keys
// are the original keys permuted, so position j in both views holds the
// same underlying ideal. The pairing recovers the permutation without
// any ideal-equality search.
//
// Precondition: canonical keys are a strict total order with no ties among
// distinct ideals. A tie would silently mis-pair images; key construction
// in the arithmetic layer rules ties out for well-formed data, and
// corrupted data is rejected earlier by the decode integrity check.
//
// An empty automorphism list yields an empty table.
func (ix *Index[I]) Conjugate(auts []Automorphism[I]) (Table, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}

	ref := make([]Entry[I], len(ix.ideals))
	copy(ref, ix.ideals)
	sort.Slice(ref, func(i, j int) bool { return ref[i].Key < ref[j].Key })

	type image struct {
		key   string
		label string // label of the pre-image
	}

	table := make(Table, len(ref)*len(auts))
	for ig, g := range auts {
		if g == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilAutomorphism, ig)
		}
		images := make([]image, len(ref))
		for i, e := range ref {
			img, err := g.Image(e.Ideal)
			if err != nil {
				return nil, fmt.Errorf("ideals: automorphism %d on %s: %w", ig, e.Label, err)
			}
			images[i] = image{key: img.CanonicalKey(), label: e.Label}
		}
		sort.Slice(images, func(i, j int) bool { return images[i].key < images[j].key })
		for j := range ref {
			table[TableKey{Label: images[j].label, Aut: ig}] = ref[j].Label
		}
	}
	return table, nil
}
