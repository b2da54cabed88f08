package matrix

import "math/big"

// HNF computes the lower-triangular row Hermite normal form of the lattice
// spanned by the rows of m.
//
// The result is a square cols×cols matrix H with H[i][i] > 0, H[i][j] == 0
// for j > i, and 0 <= H[i][j] < H[j][j] for j < i. H is uniquely determined
// by the row span of m, independent of the order or choice of generators.
//
// Returns ErrNilMatrix for a nil receiver argument and ErrRankDeficient when
// the rows do not span a full-rank sublattice of Z^cols.
func HNF(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	d := m.cols

	// Working copies of the nonzero rows; all arithmetic is in place.
	rows := make([][]*big.Int, 0, m.rows)
	for _, r := range m.a {
		if !zeroRow(r) {
			cp := make([]*big.Int, d)
			for j, v := range r {
				cp[j] = new(big.Int).Set(v)
			}
			rows = append(rows, cp)
		}
	}

	// Eliminate from the last column down, extracting one pivot row per
	// column. Rows processed for column c already have zeros in every
	// column beyond c.
	pivots := make([][]*big.Int, d)
	for c := d - 1; c >= 0; c-- {
		for {
			p := -1
			for i, r := range rows {
				if r[c].Sign() == 0 {
					continue
				}
				if p < 0 || r[c].CmpAbs(rows[p][c]) < 0 {
					p = i
				}
			}
			if p < 0 {
				return nil, ErrRankDeficient
			}
			reduced := true
			q := new(big.Int)
			for i, r := range rows {
				if i == p || r[c].Sign() == 0 {
					continue
				}
				q.Quo(r[c], rows[p][c])
				subMul(r, rows[p], q)
				if r[c].Sign() != 0 {
					reduced = false
				}
			}
			if reduced {
				pivot := rows[p]
				rows = append(rows[:p], rows[p+1:]...)
				if pivot[c].Sign() < 0 {
					negate(pivot)
				}
				pivots[c] = pivot
				break
			}
		}
	}

	// Reduce entries below the diagonal into [0, diagonal). Working the
	// columns right to left keeps earlier reductions intact, since pivot j
	// only touches columns <= j.
	q, rem := new(big.Int), new(big.Int)
	for i := 1; i < d; i++ {
		for j := i - 1; j >= 0; j-- {
			q.DivMod(pivots[i][j], pivots[j][j], rem)
			if q.Sign() != 0 {
				subMul(pivots[i], pivots[j], q)
			}
		}
	}

	h := NewDense(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			h.a[i][j].Set(pivots[i][j])
		}
	}

	return h, nil
}

// subMul subtracts q times row s from row r in place.
func subMul(r, s []*big.Int, q *big.Int) {
	t := new(big.Int)
	for j := range r {
		if s[j].Sign() == 0 {
			continue
		}
		t.Mul(q, s[j])
		r[j].Sub(r[j], t)
	}
}

func negate(r []*big.Int) {
	for _, v := range r {
		v.Neg(v)
	}
}

func zeroRow(r []*big.Int) bool {
	for _, v := range r {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}
