package ctbench

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// TTest is the outcome of Welch's t-test on one band.
//
// A positive T means the Left class was slower on average.
type TTest struct {
	Band   Band
	T      float64
	NLeft  int
	NRight int
}

// N returns the combined cropped sample count.
func (t TTest) N() int {
	return t.NLeft + t.NRight
}

// Evaluate crops both classes to the band's threshold and runs Welch's t-test on the crops.
//
// The returned error wraps ErrBandSkipped when either crop has fewer than two values or
// when every cropped value in both classes is identical.
func Evaluate(band Band, left, right []uint64) (TTest, error) {
	return evaluateSorted(band, sortedFloats(left), sortedFloats(right))
}

// evaluateSorted is Evaluate over ascending samples. A crop is then a prefix.
//
// t is built from the crops' means and sample variances directly. A full
// stats.TwoSampleWelchTTest would also derive a p-value per band, which nothing reads
// and which dominates evaluation time at millions of samples.
func evaluateSorted(band Band, left, right []float64) (TTest, error) {
	l, r := crop(left, band.Threshold), crop(right, band.Threshold)
	if len(l) < 2 || len(r) < 2 {
		return TTest{}, fmt.Errorf("%w: percentile %v: fewer than 2 samples in a class", ErrBandSkipped, band.Percentile)
	}

	ls, rs := stats.Sample{Xs: l, Sorted: true}, stats.Sample{Xs: r, Sorted: true}
	lv, rv := ls.Variance(), rs.Variance()
	if lv == 0 && rv == 0 {
		return TTest{}, fmt.Errorf("%w: percentile %v: zero variance in both classes", ErrBandSkipped, band.Percentile)
	}

	t := (ls.Mean() - rs.Mean()) / math.Sqrt(lv/float64(len(l))+rv/float64(len(r)))
	return TTest{Band: band, T: t, NLeft: len(l), NRight: len(r)}, nil
}

// crop returns the prefix of sorted holding the values <= threshold.
func crop(sorted []float64, threshold float64) []float64 {
	n := sort.Search(len(sorted), func(i int) bool { return sorted[i] > threshold })
	return sorted[:n]
}
