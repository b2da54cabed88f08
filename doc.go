// Package hmfield maps between the two representations of an ideal used by
// a Hilbert modular form field database record: the compact serialized form
// "[N,n,alpha]" (norm, least positive rational integer, second generator) and
// a fully computed algebraic ideal with a human-readable label "N.k".
//
// What lives where:
//
//	matrix/  exact *big.Int matrices and Hermite normal form, the
//	         canonical representation every ordering decision rests on
//	nfield/  number fields Q[x]/(f) over a monic integral polynomial:
//	         power-basis element arithmetic, expression parsing, ideals
//	         as Z-lattices with norm / least-integer / canonical key,
//	         and field automorphisms
//	ideals/  the labeling core: the "[N,n,alpha]" codec with its
//	         data-integrity check, deterministic per-norm rank labels,
//	         the immutable label-to-ideal index, bounded iteration, and
//	         conjugation tables describing how automorphisms permute
//	         labels
//
// The ideals package is written against small collaborator interfaces, so
// the labeling logic is independent of nfield and testable in isolation;
// nfield satisfies those interfaces out of the box.
//
// Quick example:
//
//	f, _ := nfield.NewInts("a", -1, -1, 1) // Q(sqrt 5): a^2 - a - 1
//	ix, _ := ideals.NewIndex[*nfield.Ideal](f,
//	    []string{"[1,1,0]", "[4,2,0]", "[5,5,2*a-1]"}, nil)
//	for label, idl := range ix.Ideals() {
//	    fmt.Println(label, idl.Norm())
//	}
//
// All structures are built once and never mutated afterwards, so a built
// index is safe to share across concurrent readers without locking.
package hmfield
