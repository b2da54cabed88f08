// Package ideals assigns deterministic labels to the ideals of a number
// field and maps between their serialized form, their label, and the
// computed ideal object.
//
// A field database record stores each ideal as the string "[N,n,alpha]":
// N the norm, n the least positive rational integer in the ideal, alpha a
// second generator written in the field's generator variable. This package
// decodes those strings, checks that the stored invariants match the
// constructed ideal, assigns labels of the form "N.k" (k the 1-based rank
// among ideals of norm N, in the record's canonical order), builds the
// bidirectional label↔ideal lookup tables, and computes how field
// automorphisms permute the labels.
//
// Collaborator contract:
//
// The package is written against three small interfaces (Ideal, Field and
// Automorphism) rather than a concrete arithmetic layer. The nfield
// package satisfies all three. An Ideal must expose its norm, its least
// positive rational integer, and CanonicalKey: a string that is equal for
// equal ideals and whose byte-wise comparison is a strict total order. All
// sorting, deduplication and conjugation alignment uses that key, never
// object identity.
//
// Ordering precondition (not checked at runtime):
//
// The serialized lists are trusted to arrive grouped by ascending norm and,
// within one norm, in the field's canonical ideal order. LabelAll does not
// re-sort; feeding it an out-of-order list silently yields non-canonical
// labels. This mirrors the database pipeline, which emits the lists in
// exactly this order.
//
// Errors (sentinel):
//
//   - ErrNilField: no field collaborator supplied.
//   - ErrNilIndex: conjugation requested on a nil index.
//   - ErrNilAutomorphism: a nil automorphism in the input list.
//   - ErrEncoding: a serialized ideal is not "[N,n,alpha]" shaped.
//   - ErrIntegrity: stored norm or least integer disagrees with the
//     constructed ideal; corrupted or mismatched data, aborts construction.
//   - ErrBadLimit: negative iteration limit (panics, option misuse).
//
// Lookup misses are not errors: Ideal/IdealLabel and their prime aliases
// return a second boolean result.
//
// Example usage:
//
//	f, _ := nfield.NewInts("a", -1, -1, 1)
//	ix, err := ideals.NewIndex[*nfield.Ideal](f, record.Ideals, record.Primes)
//	if err != nil { ... }
//	label, ok := ix.IdealLabel(idl)
//	for label, idl := range ix.Ideals(ideals.WithLimit(20)) { ... }
//	table, err := ix.Conjugate([]ideals.Automorphism[*nfield.Ideal]{g0, g1})
//
// A built Index and Table are immutable and safe to share across
// concurrent readers.
package ideals
