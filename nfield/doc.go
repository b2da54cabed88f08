// Package nfield implements number fields K = Q[x]/(f) for a monic integral
// defining polynomial f, together with the pieces of ideal arithmetic the
// labeling core needs: element parsing, ideal construction from a generating
// pair, ideal norms and least positive integers, a canonical comparison key,
// and field automorphisms.
//
// Representation:
//
//   - Elements are coordinate vectors of *big.Rat over the power basis
//     1, a, a^2, ..., a^(deg-1), where a is the class of x. Arithmetic is
//     exact; there is no floating point anywhere.
//   - The power basis Z[a] is taken as the integral basis. Ideal generators
//     with non-integral power-basis coordinates are rejected with
//     ErrNotIntegral.
//   - An ideal (n, alpha) is the Z-span of {n·a^i} ∪ {alpha·a^i}. Its
//     canonical form is the Hermite normal form of that lattice (see the
//     matrix package); Norm is the determinant of the form and LeastInteger
//     its top-left pivot, the generator of the ideal's intersection with Z.
//
// Ordering:
//
//   - CanonicalKey serializes the HNF so that two ideals of the same field
//     are equal exactly when their keys are equal, and plain string
//     comparison of keys is a strict total order. All label assignment and
//     conjugation alignment in the ideals package rests on this key.
//
// Errors (sentinel):
//
//   - ErrVarName, ErrDegree, ErrNotMonic: invalid field construction.
//   - ErrParse: malformed element expression.
//   - ErrBadGenerator: an opaque generator value that is not an Elem.
//   - ErrNotIntegral: ideal generator outside Z[a].
//   - ErrZeroIdeal: the generating pair spans the zero ideal.
//   - ErrNotRoot: automorphism image is not a root of f.
//   - ErrWrongField: mixing values from different fields.
//
// Example usage:
//
//	f, _ := nfield.NewInts("a", -1, -1, 1) // a^2 - a - 1, i.e. Q(sqrt 5)
//	alpha, _ := f.ParseElement("2*a-1")
//	idl, _ := f.Ideal(big.NewInt(5), alpha)
//	fmt.Println(idl.Norm(), idl.LeastInteger()) // 5 5
package nfield
