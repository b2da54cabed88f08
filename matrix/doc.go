// Package matrix provides exact integer matrices over math/big and the
// Hermite normal form (HNF) used as the canonical representation of an
// ideal's underlying Z-lattice.
//
// Overview:
//
//   - Dense is a rectangular matrix of *big.Int entries. Rows are lattice
//     generators expressed in a fixed integral basis; columns are basis
//     coordinates.
//   - HNF reduces the row span of a Dense to its unique lower-triangular
//     Hermite normal form: positive diagonal, and every entry below the
//     diagonal reduced into [0, diagonal of its column). Two generating
//     sets span the same lattice exactly when their HNFs are equal, which
//     is what makes the form usable as an equality and ordering key.
//
// Conventions:
//
//   - Row i of the result has its pivot on column i, so the first row is
//     (h00, 0, ..., 0): the lattice's intersection with the first basis
//     direction is h00·Z.
//   - The determinant of the form (product of the diagonal) is the index
//     of the lattice in Z^cols.
//
// Complexity:
//
//   - HNF: O(rows · cols²) big.Int row operations; entry growth is modest
//     for the small dimensions (field degrees) this package is used with.
//
// Errors (sentinel):
//
//   - ErrNilMatrix: HNF received a nil matrix.
//   - ErrRankDeficient: the rows do not span a full-rank sublattice of
//     Z^cols, so no square HNF exists.
package matrix
