package matrix

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Sentinel errors for matrix operations.
var (
	// ErrNilMatrix indicates that a nil *Dense was passed to HNF.
	ErrNilMatrix = errors.New("matrix: matrix is nil")

	// ErrRankDeficient indicates that the rows of the matrix do not span a
	// full-rank sublattice of Z^cols, so no square Hermite normal form exists.
	ErrRankDeficient = errors.New("matrix: rows do not have full column rank")
)

// Dense is a rectangular matrix of exact integer entries.
//
// Entries are stored as *big.Int and are never shared with the caller:
// Set copies its argument and At returns a fresh copy, so a Dense cannot
// be mutated through values passed in or handed out.
type Dense struct {
	rows, cols int
	a          [][]*big.Int
}

// NewDense returns a rows×cols matrix with every entry zero.
// Panics if rows is negative or cols is not positive.
func NewDense(rows, cols int) *Dense {
	if rows < 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %d×%d", rows, cols))
	}
	a := make([][]*big.Int, rows)
	for i := range a {
		a[i] = make([]*big.Int, cols)
		for j := range a[i] {
			a[i][j] = new(big.Int)
		}
	}
	return &Dense{rows: rows, cols: cols, a: a}
}

// Rows reports the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns a copy of the entry at row i, column j.
// Panics if the indices are out of range.
func (m *Dense) At(i, j int) *big.Int {
	m.check(i, j)
	return new(big.Int).Set(m.a[i][j])
}

// Set stores a copy of v at row i, column j.
// Panics if the indices are out of range.
func (m *Dense) Set(i, j int, v *big.Int) {
	m.check(i, j)
	m.a[i][j].Set(v)
}

// Equal reports whether m and n have identical dimensions and entries.
func (m *Dense) Equal(n *Dense) bool {
	if m == nil || n == nil {
		return m == n
	}
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.a {
		for j := range m.a[i] {
			if m.a[i][j].Cmp(n.a[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// String renders the matrix as rows of space-separated entries, one row
// per line. Intended for debugging and test failure messages.
func (m *Dense) String() string {
	var b strings.Builder
	for i := range m.a {
		for j := range m.a[i] {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.a[i][j].Text(10))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %d×%d", i, j, m.rows, m.cols))
	}
}
