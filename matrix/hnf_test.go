// Package matrix_test validates the Dense container and the Hermite normal
// form reduction: triangular shape, diagonal positivity, reduction of
// sub-diagonal entries, invariance under generator order, and rank errors.
package matrix_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/arithlab/hmfield/matrix"
)

// fill builds a Dense from int64 rows.
func fill(t testing.TB, rows [][]int64, cols int) *matrix.Dense {
	t.Helper()
	m := matrix.NewDense(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			t.Fatalf("row %d has %d entries, want %d", i, len(r), cols)
		}
		for j, v := range r {
			m.Set(i, j, big.NewInt(v))
		}
	}
	return m
}

func TestHNF_Identity(t *testing.T) {
	m := fill(t, [][]int64{{1, 0}, {0, 1}}, 2)
	h, err := matrix.HNF(m)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Equal(fill(t, [][]int64{{1, 0}, {0, 1}}, 2)) {
		t.Errorf("HNF of identity rows = \n%v", h)
	}
}

func TestHNF_PrimeLattice(t *testing.T) {
	// Generators of the ideal (11, a-4) in Z[a], a^2 = a+1:
	// 11, 11a, a-4, and a(a-4) = 1-3a.
	m := fill(t, [][]int64{{11, 0}, {0, 11}, {-4, 1}, {1, -3}}, 2)
	h, err := matrix.HNF(m)
	if err != nil {
		t.Fatal(err)
	}
	want := fill(t, [][]int64{{11, 0}, {7, 1}}, 2)
	if !h.Equal(want) {
		t.Errorf("HNF = \n%v want \n%v", h, want)
	}
}

func TestHNF_GeneratorOrderIrrelevant(t *testing.T) {
	rows := [][]int64{{11, 0}, {0, 11}, {-4, 1}, {1, -3}}
	want, err := matrix.HNF(fill(t, rows, 2))
	if err != nil {
		t.Fatal(err)
	}
	r := rand.New(rand.NewSource(7)) // deterministic seed for reproducibility
	for trial := 0; trial < 10; trial++ {
		perm := r.Perm(len(rows))
		shuffled := make([][]int64, len(rows))
		for i, p := range perm {
			shuffled[i] = rows[p]
		}
		h, err := matrix.HNF(fill(t, shuffled, 2))
		if err != nil {
			t.Fatal(err)
		}
		if !h.Equal(want) {
			t.Fatalf("permutation %v changed the HNF:\n%v want \n%v", perm, h, want)
		}
	}
}

func TestHNF_ZeroRowsIgnored(t *testing.T) {
	m := fill(t, [][]int64{{0, 0}, {2, 0}, {0, 0}, {0, 3}}, 2)
	h, err := matrix.HNF(m)
	if err != nil {
		t.Fatal(err)
	}
	want := fill(t, [][]int64{{2, 0}, {0, 3}}, 2)
	if !h.Equal(want) {
		t.Errorf("HNF = \n%v want \n%v", h, want)
	}
}

func TestHNF_CubicLattice(t *testing.T) {
	// Generators of (23, a-3) in Z[a], a^3 = a+1.
	m := fill(t, [][]int64{
		{23, 0, 0},
		{0, 23, 0},
		{0, 0, 23},
		{-3, 1, 0},
		{0, -3, 1},
		{1, 1, -3},
	}, 3)
	h, err := matrix.HNF(m)
	if err != nil {
		t.Fatal(err)
	}
	want := fill(t, [][]int64{{23, 0, 0}, {20, 1, 0}, {14, 0, 1}}, 3)
	if !h.Equal(want) {
		t.Errorf("HNF = \n%v want \n%v", h, want)
	}
}

func TestHNF_RankDeficient(t *testing.T) {
	m := fill(t, [][]int64{{2, 4}}, 2)
	if _, err := matrix.HNF(m); !errors.Is(err, matrix.ErrRankDeficient) {
		t.Fatalf("expected ErrRankDeficient, got %v", err)
	}
}

func TestHNF_NilMatrix(t *testing.T) {
	if _, err := matrix.HNF(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("expected ErrNilMatrix, got %v", err)
	}
}

func TestDense_CopySemantics(t *testing.T) {
	m := matrix.NewDense(1, 1)
	v := big.NewInt(5)
	m.Set(0, 0, v)
	v.SetInt64(99) // mutating the argument must not reach the matrix
	if m.At(0, 0).Int64() != 5 {
		t.Errorf("Set stored a shared pointer: At = %v", m.At(0, 0))
	}
	m.At(0, 0).SetInt64(42) // mutating the returned value must not reach the matrix
	if m.At(0, 0).Int64() != 5 {
		t.Errorf("At returned a shared pointer: At = %v", m.At(0, 0))
	}
}

// BenchmarkHNF measures reduction of the cubic prime lattice above.
func BenchmarkHNF(b *testing.B) {
	m := fill(b, [][]int64{
		{23, 0, 0},
		{0, 23, 0},
		{0, 0, 23},
		{-3, 1, 0},
		{0, -3, 1},
		{1, 1, -3},
	}, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.HNF(m); err != nil {
			b.Fatal(err)
		}
	}
}
