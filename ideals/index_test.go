package ideals_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arithlab/hmfield/ideals"
	"github.com/arithlab/hmfield/nfield"
)

// Fixture: Q(sqrt 5) as Q[a]/(a^2 - a - 1). The general list holds the six
// ideals of norm up to 11, the prime list the primes up to norm 19. Both
// lists are grouped by ascending norm; within norm 11 the canonical order
// puts (11, a-8) (HNF [[11,0],[3,1]]) before (11, a-4) ([[11,0],[7,1]]).
var (
	idealStrs = []string{
		"[1,1,0]",
		"[4,2,0]",
		"[5,5,2*a-1]",
		"[9,3,0]",
		"[11,11,a-8]",
		"[11,11,a-4]",
	}
	primeStrs = []string{
		"[4,2,0]",
		"[5,5,2*a-1]",
		"[9,3,0]",
		"[11,11,a-8]",
		"[11,11,a-4]",
		"[19,19,a-5]",
	}
)

// goldenField builds the fixture field and index.
func goldenField(t *testing.T) (*nfield.Field, *ideals.Index[*nfield.Ideal]) {
	t.Helper()
	f, err := nfield.NewInts("a", -1, -1, 1)
	require.NoError(t, err)
	ix, err := ideals.NewIndex[*nfield.Ideal](f, idealStrs, primeStrs)
	require.NoError(t, err)
	return f, ix
}

// fieldIdeal parses and constructs (n, gen) directly, bypassing the index.
func fieldIdeal(t *testing.T, f *nfield.Field, n int64, gen string) *nfield.Ideal {
	t.Helper()
	e, err := f.ParseElement(gen)
	require.NoError(t, err)
	idl, err := f.Ideal(bigInt(n), e)
	require.NoError(t, err)
	return idl
}

func bigInt(n int64) *big.Int { return big.NewInt(n) }

func TestNewIndex_Sizes(t *testing.T) {
	_, ix := goldenField(t)
	require.Equal(t, 6, ix.NumIdeals())
	require.Equal(t, 6, ix.NumPrimes())
}

func TestIndex_RoundTrip(t *testing.T) {
	_, ix := goldenField(t)
	count := 0
	for label, idl := range ix.Ideals() {
		got, ok := ix.IdealLabel(idl)
		require.True(t, ok)
		require.Equal(t, label, got)

		back, ok := ix.Ideal(label)
		require.True(t, ok)
		require.True(t, idl.Equal(back))
		count++
	}
	require.Equal(t, ix.NumIdeals(), count)
}

func TestIndex_LabelsAreCanonical(t *testing.T) {
	_, ix := goldenField(t)
	var labels []string
	for label := range ix.Ideals() {
		labels = append(labels, label)
	}
	require.Equal(t, []string{"1.1", "4.1", "5.1", "9.1", "11.1", "11.2"}, labels)
}

func TestIndex_LookupByEquality(t *testing.T) {
	// An equal ideal from a different generating pair resolves to the same
	// label: lookups go through the canonical key, not object identity.
	f, ix := goldenField(t)
	other := fieldIdeal(t, f, 5, "1-2*a") // == (5, 2a-1)
	label, ok := ix.IdealLabel(other)
	require.True(t, ok)
	require.Equal(t, "5.1", label)
}

func TestIndex_LookupMisses(t *testing.T) {
	f, ix := goldenField(t)

	_, ok := ix.Ideal("7.1")
	require.False(t, ok)

	absent := fieldIdeal(t, f, 29, "a-6")
	_, ok = ix.IdealLabel(absent)
	require.False(t, ok)
}

func TestIndex_PrimeAccessorsAliasGeneralTable(t *testing.T) {
	f, ix := goldenField(t)

	// A prime present in both tables resolves through the general table.
	p := fieldIdeal(t, f, 11, "a-8")
	viaIdeal, ok1 := ix.IdealLabel(p)
	viaPrime, ok2 := ix.PrimeLabel(p)
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, viaIdeal, viaPrime)
	require.Equal(t, "11.1", viaPrime)

	got1, ok1 := ix.Ideal("11.2")
	got2, ok2 := ix.Prime("11.2")
	require.True(t, ok1)
	require.True(t, ok2)
	require.True(t, got1.Equal(got2))

	// The prime table labels (19, a-5) as 19.1, but the aliases resolve
	// through the general table, which does not contain it.
	q := fieldIdeal(t, f, 19, "a-5")
	_, ok := ix.PrimeLabel(q)
	require.False(t, ok)
	_, ok = ix.Prime("19.1")
	require.False(t, ok)

	// The prime table itself knows it, with its own label sequence.
	var primeLabels []string
	for label := range ix.Primes() {
		primeLabels = append(primeLabels, label)
	}
	require.Equal(t, []string{"4.1", "5.1", "9.1", "11.1", "11.2", "19.1"}, primeLabels)
}

func TestIndex_IterationLimit(t *testing.T) {
	_, ix := goldenField(t)

	var labels []string
	for label := range ix.Ideals(ideals.WithLimit(2)) {
		labels = append(labels, label)
	}
	require.Equal(t, []string{"1.1", "4.1"}, labels)

	for range ix.Ideals(ideals.WithLimit(0)) {
		t.Fatal("WithLimit(0) must yield nothing")
	}

	// A limit beyond the table is just the whole table.
	n := 0
	for range ix.Ideals(ideals.WithLimit(100)) {
		n++
	}
	require.Equal(t, ix.NumIdeals(), n)
}

func TestIndex_IterationRestartable(t *testing.T) {
	_, ix := goldenField(t)
	seq := ix.Ideals()

	collect := func() []string {
		var out []string
		for label := range seq {
			out = append(out, label)
		}
		return out
	}
	first, second := collect(), collect()
	require.Equal(t, first, second)

	// Early break terminates cleanly and a fresh pass starts over.
	for label := range ix.Ideals() {
		require.Equal(t, "1.1", label)
		break
	}
	require.Equal(t, first, collect())
}

func TestIndex_NegativeLimitPanics(t *testing.T) {
	_, ix := goldenField(t)
	require.Panics(t, func() { ix.Ideals(ideals.WithLimit(-1)) })
}

func TestNewIndex_PropagatesDataFaults(t *testing.T) {
	f, err := nfield.NewInts("a", -1, -1, 1)
	require.NoError(t, err)

	// Corrupted norm in the general list.
	_, err = ideals.NewIndex[*nfield.Ideal](f, []string{"[3,2,0]"}, nil)
	require.ErrorIs(t, err, ideals.ErrIntegrity)

	// Corrupted entry in the prime list aborts construction too.
	_, err = ideals.NewIndex[*nfield.Ideal](f, []string{"[1,1,0]"}, []string{"[5,5,a]"})
	require.ErrorIs(t, err, ideals.ErrIntegrity)

	// Malformed encoding.
	_, err = ideals.NewIndex[*nfield.Ideal](f, []string{"[1,1]"}, nil)
	require.ErrorIs(t, err, ideals.ErrEncoding)
}
