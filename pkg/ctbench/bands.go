package ctbench

import (
	"fmt"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

// MinSamples is the smallest pooled sample count for which bands are derived.
const MinSamples = 10

// BandTable is an ordered list of percentile fractions in (0, 1].
//
// Low fractions crop the long tail aggressively. A final 1.0 admits every sample.
type BandTable []float64

// DefaultBandTable returns the 101-band table: p_k = 1 - 0.5^(10k/100) for k = 1..100,
// followed by the uncropped band.
func DefaultBandTable() BandTable {
	table := make(BandTable, 0, 101)
	for k := 1; k <= 100; k++ {
		table = append(table, 1-math.Pow(0.5, float64(10*k)/100))
	}
	return append(table, 1)
}

// Validate checks that the table is non-empty, strictly increasing and within (0, 1].
func (t BandTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no percentiles", ErrInvalidBandTable)
	}
	for i, p := range t {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return fmt.Errorf("%w: percentile %v at index %d is outside (0, 1]", ErrInvalidBandTable, p, i)
		}
		if i > 0 && p <= t[i-1] {
			return fmt.Errorf("%w: percentile %v at index %d is not greater than %v", ErrInvalidBandTable, p, i, t[i-1])
		}
	}
	return nil
}

// Band is one percentile of the pooled samples. Samples at or below Threshold are kept.
type Band struct {
	Percentile float64
	Threshold  float64
}

// SelectBands derives one Band per table entry from the pooled samples of both classes.
// The input is not modified. It returns ErrInsufficientData below MinSamples.
func SelectBands(table BandTable, left, right []uint64) ([]Band, error) {
	if err := checkSampleCount(len(left) + len(right)); err != nil {
		return nil, err
	}
	return selectBandsSorted(table, mergeSorted(sortedFloats(left), sortedFloats(right))), nil
}

func checkSampleCount(n int) error {
	if n < MinSamples {
		return fmt.Errorf("%w: %d samples, need at least %d", ErrInsufficientData, n, MinSamples)
	}
	return nil
}

func selectBandsSorted(table BandTable, pooled []float64) []Band {
	sample := stats.Sample{Xs: pooled, Sorted: true}
	bands := make([]Band, len(table))
	for i, p := range table {
		bands[i] = Band{Percentile: p, Threshold: sample.Quantile(p)}
	}
	return bands
}

// sortedFloats returns an ascending float64 copy of xs.
func sortedFloats(xs []uint64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	slices.Sort(out)
	return out
}

// mergeSorted merges two ascending slices into a new ascending slice.
func mergeSorted(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
