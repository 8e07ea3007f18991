package ctbench_test

import (
	"math/rand/v2"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

func TestEvaluate(t *testing.T) {
	t.Run("Welch Statistic", func(t *testing.T) {
		// Means 2.5 and 3.5, sample variance 5/3 in both classes.
		band := ctbench.Band{Percentile: 1, Threshold: 10}
		test, err := ctbench.Evaluate(band, []uint64{4, 1, 3, 2}, []uint64{2, 5, 3, 4})
		require.NoError(t, err)
		assert.InDelta(t, -1.0954451150103321, test.T, 1e-12)
		assert.Equal(t, 4, test.NLeft)
		assert.Equal(t, 4, test.NRight)
		assert.Equal(t, band, test.Band)
	})

	t.Run("Sign Shows Slower Class", func(t *testing.T) {
		band := ctbench.Band{Percentile: 1, Threshold: 100}
		test, err := ctbench.Evaluate(band, []uint64{50, 52, 51, 53}, []uint64{10, 12, 11, 13})
		require.NoError(t, err)
		assert.Positive(t, test.T, "Left is slower")
	})

	t.Run("Crop Is Inclusive", func(t *testing.T) {
		band := ctbench.Band{Percentile: 0.5, Threshold: 3}
		test, err := ctbench.Evaluate(band, []uint64{1, 3, 4, 9}, []uint64{2, 3, 3, 8})
		require.NoError(t, err)
		assert.Equal(t, 2, test.NLeft)
		assert.Equal(t, 3, test.NRight)
	})

	t.Run("Too Few Samples", func(t *testing.T) {
		band := ctbench.Band{Percentile: 0.1, Threshold: 1}
		_, err := ctbench.Evaluate(band, []uint64{1, 5, 6}, []uint64{1, 1, 7})
		assert.ErrorIs(t, err, ctbench.ErrBandSkipped)
	})

	t.Run("Zero Variance", func(t *testing.T) {
		band := ctbench.Band{Percentile: 0.5, Threshold: 5}
		_, err := ctbench.Evaluate(band, []uint64{5, 5, 5, 9}, []uint64{5, 5, 7})
		assert.ErrorIs(t, err, ctbench.ErrBandSkipped)
	})
}

// TestEvaluateMatchesWelch checks the per-band statistic against moremath's full Welch test.
func TestEvaluateMatchesWelch(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 5; i++ {
		left, right := randomTicks(rng, 3000), randomTicks(rng, 2000)
		band := ctbench.Band{Percentile: 1, Threshold: 1e12}

		test, err := ctbench.Evaluate(band, left, right)
		require.NoError(t, err)

		welch, err := stats.TwoSampleWelchTTest(stats.Sample{Xs: toFloats(left)}, stats.Sample{Xs: toFloats(right)}, stats.LocationDiffers)
		require.NoError(t, err)
		assert.InDelta(t, welch.T, test.T, 1e-9)
		assert.Equal(t, welch.N1, test.NLeft)
		assert.Equal(t, welch.N2, test.NRight)
	}
}

func toFloats(xs []uint64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
