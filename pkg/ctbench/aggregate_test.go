package ctbench_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// assertConsistent checks the derived fields of a report against MaxT and N.
func assertConsistent(t *testing.T, report ctbench.Report) {
	t.Helper()
	require.Positive(t, report.N)
	assert.InDelta(t, report.MaxT/math.Sqrt(float64(report.N)), report.MaxTau, 1e-12)
	assert.InEpsilon(t, math.Pow(5/report.MaxTau, 2), report.MeasurementsToSignificance, 1e-9)
}

func TestAggregate(t *testing.T) {
	t.Run("Zero Variance Band Is Skipped", func(t *testing.T) {
		left := []uint64{5, 5, 5, 5, 9, 12}
		right := []uint64{5, 5, 5, 5, 7, 20}
		bands := []ctbench.Band{
			{Percentile: 0.1, Threshold: 1},
			{Percentile: 0.5, Threshold: 5},
			{Percentile: 1, Threshold: 20},
		}

		report, err := ctbench.Aggregate(bands, left, right)
		require.NoError(t, err)
		assert.Equal(t, 1.0, report.Band.Percentile)
		assert.Equal(t, 12, report.N)
		assertConsistent(t, report)
	})

	t.Run("All Bands Skipped", func(t *testing.T) {
		left := []uint64{5, 5, 5, 9}
		right := []uint64{5, 5, 5, 8}
		bands := []ctbench.Band{{Percentile: 0.5, Threshold: 5}}

		_, err := ctbench.Aggregate(bands, left, right)
		assert.ErrorIs(t, err, ctbench.ErrInsufficientData)
	})

	t.Run("Largest Magnitude Wins", func(t *testing.T) {
		// The narrow band sees a clean shift; the wide band drowns it in outliers.
		left := []uint64{10, 11, 10, 11, 10, 11, 900, 100}
		right := []uint64{20, 21, 20, 21, 20, 21, 50, 1000}
		bands := []ctbench.Band{
			{Percentile: 0.75, Threshold: 21},
			{Percentile: 1, Threshold: 1000},
		}

		report, err := ctbench.Aggregate(bands, left, right)
		require.NoError(t, err)
		assert.Equal(t, 0.75, report.Band.Percentile)
		assert.Negative(t, report.MaxT, "Right is slower")
		assertConsistent(t, report)

		narrow, err := ctbench.Evaluate(bands[0], left, right)
		require.NoError(t, err)
		wide, err := ctbench.Evaluate(bands[1], left, right)
		require.NoError(t, err)
		assert.Greater(t, math.Abs(narrow.T), math.Abs(wide.T))
		assert.Equal(t, narrow.T, report.MaxT)
	})

	t.Run("Summaries Describe Uncropped Classes", func(t *testing.T) {
		left := []uint64{1, 2, 3, 4, 100}
		right := []uint64{2, 3, 4, 5, 6}
		report, err := ctbench.Aggregate([]ctbench.Band{{Percentile: 1, Threshold: 100}}, left, right)
		require.NoError(t, err)
		assert.Equal(t, ctbench.Summary{Count: 5, Min: 1, Median: 3, Mean: 22, Max: 100}, report.Left)
		assert.Equal(t, 5, report.Right.Count)
		assert.Equal(t, 6.0, report.Right.Max)
	})
}

func TestReportConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 10; i++ {
		left, right := randomTicks(rng, 2000), randomTicks(rng, 2000)
		// Shift Right by a trial-dependent amount so some reports are leaky.
		for j := range right {
			right[j] += uint64(i)
		}
		report, err := ctbench.EvaluateSamples(ctbench.DefaultBandTable(), left, right)
		require.NoError(t, err)
		assertConsistent(t, report)
	}
}

func TestReportString(t *testing.T) {
	report := ctbench.Report{
		MaxT:                       61.614724,
		N:                          200_000,
		MaxTau:                     0.137774,
		MeasurementsToSignificance: 1317.04,
	}
	assert.Equal(t, "n == +0.200M, max t = +61.61472, max tau = +0.13777, (5/tau)^2 = 1317", report.String())
	assert.True(t, report.Leaky())

	report = ctbench.Report{N: 1000, MeasurementsToSignificance: math.Inf(1)}
	assert.Equal(t, "n == +0.001M, max t = +0.00000, max tau = +0.00000, (5/tau)^2 = inf", report.String())
	assert.False(t, report.Leaky())
}
