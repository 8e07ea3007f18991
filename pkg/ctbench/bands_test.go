package ctbench_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// randomTicks returns n values from a skewed distribution with a long tail.
func randomTicks(rng *rand.Rand, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(100 + rng.ExpFloat64()*20)
		// Occasional scheduler-like outlier.
		if rng.IntN(1000) == 0 {
			out[i] += 10_000
		}
	}
	return out
}

func TestDefaultBandTable(t *testing.T) {
	table := ctbench.DefaultBandTable()
	require.Len(t, table, 101)
	require.NoError(t, table.Validate())

	assert.InDelta(t, 1-0.9330329915368074, table[0], 1e-12, "first band is 1 - 0.5^0.1")
	assert.InDelta(t, 0.5, table[9], 1e-12, "tenth band is the median")
	assert.Equal(t, 1.0, table[100], "last band admits everything")
}

func TestBandTableValidate(t *testing.T) {
	testCases := []struct {
		name  string
		table ctbench.BandTable
		valid bool
	}{
		{name: "Valid", table: ctbench.BandTable{0.1, 0.5, 1}, valid: true},
		{name: "Empty", table: nil},
		{name: "Zero", table: ctbench.BandTable{0, 0.5}},
		{name: "Above One", table: ctbench.BandTable{0.5, 1.5}},
		{name: "Not Increasing", table: ctbench.BandTable{0.5, 0.5}},
		{name: "Decreasing", table: ctbench.BandTable{0.9, 0.1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ctbench.ErrInvalidBandTable)
			}
		})
	}
}

func TestSelectBands(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	left, right := randomTicks(rng, 5000), randomTicks(rng, 5000)
	table := ctbench.DefaultBandTable()

	t.Run("Insufficient Data", func(t *testing.T) {
		bands, err := ctbench.SelectBands(table, []uint64{1, 2, 3}, []uint64{4})
		assert.ErrorIs(t, err, ctbench.ErrInsufficientData)
		assert.Nil(t, bands)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := ctbench.SelectBands(table, left, right)
		require.NoError(t, err)
		second, err := ctbench.SelectBands(table, left, right)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Does Not Modify Input", func(t *testing.T) {
		in := []uint64{9, 3, 7, 1, 5, 8, 2, 6, 4, 0}
		orig := append([]uint64(nil), in...)
		_, err := ctbench.SelectBands(table, in, nil)
		require.NoError(t, err)
		assert.Equal(t, orig, in)
	})

	t.Run("Top Band Admits Everything", func(t *testing.T) {
		bands, err := ctbench.SelectBands(table, left, right)
		require.NoError(t, err)
		top := max(slices.Max(left), slices.Max(right))
		assert.Equal(t, float64(top), bands[len(bands)-1].Threshold)
	})

	t.Run("Monotonic Band Width", func(t *testing.T) {
		bands, err := ctbench.SelectBands(table, left, right)
		require.NoError(t, err)
		require.Len(t, bands, len(table))

		prevN := 0
		for i, band := range bands {
			if i > 0 {
				assert.GreaterOrEqual(t, band.Threshold, bands[i-1].Threshold)
			}
			test, err := ctbench.Evaluate(band, left, right)
			if err != nil {
				continue
			}
			assert.GreaterOrEqual(t, test.N(), prevN, "band %d admitted fewer samples", i)
			prevN = test.N()
		}
		assert.Equal(t, len(left)+len(right), prevN)
	})
}
