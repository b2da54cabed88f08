package ideals

import "iter"

// Index owns a field's labeled ideal tables: the general ideals and the
// prime ideals, each labeled independently by LabelAll, plus the reverse
// mappings label→ideal and canonical-key→label.
//
// The reverse mappings are built from the general table only. The prime
// accessors Prime and PrimeLabel are deliberate aliases of Ideal and
// IdealLabel: published labels resolve primes through the general table,
// even though the prime table carries its own label sequence. See the
// method documentation.
//
// An Index is built once and never mutated; it is safe for concurrent
// readers.
type Index[I Ideal] struct {
	ideals  []Entry[I]
	primes  []Entry[I]
	byLabel map[string]I
	byKey   map[string]string
}

// NewIndex decodes, verifies and labels the two serialized lists of a
// field record (general ideals and prime ideals) and builds the lookup
// tables. Both lists must satisfy the LabelAll ordering precondition.
//
// Any decode or integrity failure in either list aborts construction.
func NewIndex[I Ideal](f Field[I], idealEncodings, primeEncodings []string) (*Index[I], error) {
	gen, err := LabelAll(f, idealEncodings)
	if err != nil {
		return nil, err
	}
	pr, err := LabelAll(f, primeEncodings)
	if err != nil {
		return nil, err
	}
	byLabel := make(map[string]I, len(gen))
	byKey := make(map[string]string, len(gen))
	for _, e := range gen {
		byLabel[e.Label] = e.Ideal
		byKey[e.Key] = e.Label
	}
	return &Index[I]{ideals: gen, primes: pr, byLabel: byLabel, byKey: byKey}, nil
}

// NumIdeals reports the number of entries in the general-ideal table.
func (ix *Index[I]) NumIdeals() int { return len(ix.ideals) }

// NumPrimes reports the number of entries in the prime table.
func (ix *Index[I]) NumPrimes() int { return len(ix.primes) }

// Ideal returns the ideal carrying the given label, if present.
func (ix *Index[I]) Ideal(label string) (I, bool) {
	idl, ok := ix.byLabel[label]
	return idl, ok
}

// IdealLabel returns the label of the given ideal, if present. The ideal
// is identified by its canonical key, never by object identity, so an
// equal ideal constructed from a different generating pair resolves to
// the same label.
func (ix *Index[I]) IdealLabel(idl I) (string, bool) {
	label, ok := ix.byKey[idl.CanonicalKey()]
	return label, ok
}

// Prime is an alias of Ideal: prime labels are resolved through the
// general-ideal table. A prime present only in the prime table is
// therefore not found here. This asymmetry is what the published labels
// rely on and is preserved intentionally.
func (ix *Index[I]) Prime(label string) (I, bool) { return ix.Ideal(label) }

// PrimeLabel is an alias of IdealLabel; see Prime.
func (ix *Index[I]) PrimeLabel(idl I) (string, bool) { return ix.IdealLabel(idl) }

// Ideals returns a fresh iterator over the general-ideal table in label
// order, yielding (label, ideal) pairs. The sequence is finite, bounded
// by WithLimit if given, and restartable: each call and each range starts
// from the beginning.
func (ix *Index[I]) Ideals(opts ...IterOption) iter.Seq2[string, I] {
	return iterate(ix.ideals, opts)
}

// Primes returns a fresh iterator over the prime table, with the prime
// table's own label sequence; same contract as Ideals.
func (ix *Index[I]) Primes(opts ...IterOption) iter.Seq2[string, I] {
	return iterate(ix.primes, opts)
}

func iterate[I Ideal](entries []Entry[I], opts []IterOption) iter.Seq2[string, I] {
	o := iterOptions{limit: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return func(yield func(string, I) bool) {
		for i, e := range entries {
			if o.limit >= 0 && i >= o.limit {
				return
			}
			if !yield(e.Label, e.Ideal) {
				return
			}
		}
	}
}
