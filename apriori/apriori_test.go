package apriori_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/basket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourOrders is the canonical small dataset: supports are
// a=0.75 b=0.75 c=0.5 ab=0.5 bc=0.5 ac=0.25 abc=0.25.
func fourOrders(t *testing.T) *basket.Matrix {
	t.Helper()
	m, err := basket.Encode([]basket.Transaction{
		{"a", "b"},
		{"a", "b", "c"},
		{"a"},
		{"b", "c"},
	})
	require.NoError(t, err)

	return m
}

// mineAt mines fourOrders at the given threshold.
func mineAt(t *testing.T, m *basket.Matrix, minSupport float64) *apriori.Itemsets {
	t.Helper()
	opts := apriori.DefaultOptions()
	opts.MinSupport = minSupport
	fi, err := apriori.Mine(m, &opts)
	require.NoError(t, err)

	return fi
}

// TestMine_FourOrderScenario pins the exact frequent collection at
// min support 0.5: {a},{b},{c},{a,b},{b,c} and nothing else —
// {a,c} and {a,b,c} fall below the threshold.
func TestMine_FourOrderScenario(t *testing.T) {
	fi := mineAt(t, fourOrders(t), 0.5)

	want := map[string]float64{
		apriori.Key([]string{"a"}):      0.75,
		apriori.Key([]string{"b"}):      0.75,
		apriori.Key([]string{"c"}):      0.5,
		apriori.Key([]string{"a", "b"}): 0.5,
		apriori.Key([]string{"b", "c"}): 0.5,
	}

	got := make(map[string]float64)
	for _, set := range fi.All() {
		got[apriori.Key(set.Items)] = set.Support
	}
	assert.Equal(t, want, got)

	// Pruned sets must be absent, not merely low.
	_, ok := fi.Support([]string{"a", "c"})
	assert.False(t, ok, "{a,c} has support 0.25 and must be excluded")
	_, ok = fi.Support([]string{"a", "b", "c"})
	assert.False(t, ok, "{a,b,c} must be excluded")
}

// TestMine_SupportLookupIsOrderFree: itemset identity ignores argument order.
func TestMine_SupportLookupIsOrderFree(t *testing.T) {
	fi := mineAt(t, fourOrders(t), 0.5)

	sup1, ok1 := fi.Support([]string{"a", "b"})
	sup2, ok2 := fi.Support([]string{"b", "a"})
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, sup1, sup2)
}

// TestMine_ThresholdInclusive: support exactly at MinSupport is kept,
// one ULP above the itemset's support is not.
func TestMine_ThresholdInclusive(t *testing.T) {
	m := fourOrders(t)

	at := mineAt(t, m, 0.5)
	_, ok := at.Support([]string{"c"})
	assert.True(t, ok, "support 0.5 at threshold 0.5 must be included")

	above := mineAt(t, m, math.Nextafter(0.5, 1))
	_, ok = above.Support([]string{"c"})
	assert.False(t, ok, "support 0.5 must be excluded an epsilon above")
}

// TestMine_DownwardClosure checks the headline invariant on a richer
// dataset: every non-empty subset of a frequent itemset is frequent with
// support at least as large (support monotonicity).
func TestMine_DownwardClosure(t *testing.T) {
	m, err := basket.Encode([]basket.Transaction{
		{"espresso", "croissant", "latte"},
		{"espresso", "croissant"},
		{"latte", "croissant", "muffin"},
		{"espresso", "latte"},
		{"croissant", "muffin"},
		{"espresso", "croissant", "latte", "muffin"},
		{"latte"},
		{"espresso", "croissant"},
	})
	require.NoError(t, err)

	fi := mineAt(t, m, 0.25)
	require.NotZero(t, fi.Len())

	for _, set := range fi.All() {
		n := len(set.Items)
		for mask := 1; mask < (1 << n); mask++ {
			if mask == (1<<n)-1 {
				continue // the set itself
			}
			var sub []string
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					sub = append(sub, set.Items[i])
				}
			}
			sup, ok := fi.Support(sub)
			assert.True(t, ok, "subset %v of frequent %v must be frequent", sub, set.Items)
			assert.GreaterOrEqual(t, sup, set.Support,
				"support(%v) must be ≥ support(%v)", sub, set.Items)
		}
	}
}

// TestMine_EmptyInput: zero transactions yield an empty collection, no error.
func TestMine_EmptyInput(t *testing.T) {
	m, err := basket.Encode(nil)
	require.NoError(t, err)

	opts := apriori.DefaultOptions()
	fi, err := apriori.Mine(m, &opts)
	require.NoError(t, err)
	assert.Zero(t, fi.Len())
	assert.Zero(t, fi.MaxSize())
	assert.Empty(t, fi.All())
}

// TestMine_InvalidThreshold: out-of-range MinSupport fails fast with
// ErrSupportRange and no partial result.
func TestMine_InvalidThreshold(t *testing.T) {
	m := fourOrders(t)

	for _, bad := range []float64{0, -0.1, 1.5, math.NaN()} {
		opts := apriori.DefaultOptions()
		opts.MinSupport = bad
		fi, err := apriori.Mine(m, &opts)
		assert.ErrorIs(t, err, apriori.ErrSupportRange, "MinSupport=%v", bad)
		assert.Nil(t, fi, "no partial result on invalid threshold")
	}
}

// TestMine_ExactlyOneIsValid: MinSupport 1.0 is the closed end of (0,1].
func TestMine_ExactlyOneIsValid(t *testing.T) {
	m, err := basket.Encode([]basket.Transaction{{"a"}, {"a"}})
	require.NoError(t, err)

	fi := mineAt(t, m, 1.0)
	sup, ok := fi.Support([]string{"a"})
	assert.True(t, ok)
	assert.Equal(t, 1.0, sup)
}

// TestMine_NilMatrix fails fast with ErrNilMatrix.
func TestMine_NilMatrix(t *testing.T) {
	opts := apriori.DefaultOptions()
	_, err := apriori.Mine(nil, &opts)
	assert.ErrorIs(t, err, apriori.ErrNilMatrix)
}

// TestMine_NegativeMaxLen fails fast with ErrMaxLen.
func TestMine_NegativeMaxLen(t *testing.T) {
	opts := apriori.DefaultOptions()
	opts.MaxLen = -1
	_, err := apriori.Mine(fourOrders(t), &opts)
	assert.ErrorIs(t, err, apriori.ErrMaxLen)
}

// TestMine_MaxLenCapsLevels: MaxLen=1 stops after singletons even when
// larger frequent itemsets exist.
func TestMine_MaxLenCapsLevels(t *testing.T) {
	opts := apriori.DefaultOptions()
	opts.MinSupport = 0.5
	opts.MaxLen = 1

	fi, err := apriori.Mine(fourOrders(t), &opts)
	require.NoError(t, err)

	assert.Equal(t, 1, fi.MaxSize())
	_, ok := fi.Support([]string{"a", "b"})
	assert.False(t, ok, "size-2 sets must not be mined under MaxLen=1")
}

// TestMine_NilOptionsUseDefaults: nil opts behave as DefaultOptions.
func TestMine_NilOptionsUseDefaults(t *testing.T) {
	fi, err := apriori.Mine(fourOrders(t), nil)
	require.NoError(t, err)
	// Default MinSupport 0.02 keeps everything here, {a,b,c} included.
	_, ok := fi.Support([]string{"a", "b", "c"})
	assert.True(t, ok)
}

// TestMine_Idempotent: identical input produces identical (itemset →
// support) mappings across runs, order-independent.
func TestMine_Idempotent(t *testing.T) {
	m := fourOrders(t)

	first := mineAt(t, m, 0.5)
	second := mineAt(t, m, 0.5)

	toMap := func(fi *apriori.Itemsets) map[string]float64 {
		out := make(map[string]float64)
		for _, set := range fi.All() {
			out[apriori.Key(set.Items)] = set.Support
		}
		return out
	}
	assert.Equal(t, toMap(first), toMap(second))
}

// TestNewItemsets_Validation covers the precomputed-collection constructor.
func TestNewItemsets_Validation(t *testing.T) {
	fi, err := apriori.NewItemsets([]apriori.Itemset{
		{Items: []string{"b", "a"}, Support: 0.5}, // unsorted on purpose
	})
	require.NoError(t, err)

	sup, ok := fi.Support([]string{"a", "b"})
	assert.True(t, ok, "identity must be canonical regardless of input order")
	assert.Equal(t, 0.5, sup)
	assert.Equal(t, []string{"a", "b"}, fi.All()[0].Items, "items come back sorted")

	_, err = apriori.NewItemsets([]apriori.Itemset{{Items: nil, Support: 0.5}})
	assert.ErrorIs(t, err, apriori.ErrEmptyItemset)

	for _, bad := range []float64{0, -1, 1.5, math.NaN()} {
		_, err = apriori.NewItemsets([]apriori.Itemset{{Items: []string{"a"}, Support: bad}})
		assert.ErrorIs(t, err, apriori.ErrSupportRange, "support %v", bad)
	}
}

// TestItemsets_BySize slices the collection by level.
func TestItemsets_BySize(t *testing.T) {
	fi := mineAt(t, fourOrders(t), 0.5)

	assert.Len(t, fi.BySize(1), 3)
	assert.Len(t, fi.BySize(2), 2)
	assert.Empty(t, fi.BySize(3))
	assert.Equal(t, 2, fi.MaxSize())
	assert.Equal(t, 5, fi.Len())
}
