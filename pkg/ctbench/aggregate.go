package ctbench

import (
	"fmt"
	"math"
)

// Aggregate evaluates every band and reduces the results to a Report built from the band
// with the largest |t|. Ties go to the band with more samples.
//
// Skipped bands are ignored. If every band is skipped, Aggregate returns ErrInsufficientData.
// The result depends only on the inputs.
func Aggregate(bands []Band, left, right []uint64) (Report, error) {
	return aggregateSorted(bands, sortedFloats(left), sortedFloats(right))
}

func aggregateSorted(bands []Band, left, right []float64) (Report, error) {
	var (
		best  TTest
		found bool
	)
	for _, band := range bands {
		test, err := evaluateSorted(band, left, right)
		if err != nil {
			continue
		}
		if !found || beats(test, best) {
			best, found = test, true
		}
	}
	if !found {
		return Report{}, fmt.Errorf("%w: all %d bands skipped", ErrInsufficientData, len(bands))
	}
	return newReport(best, left, right), nil
}

// beats reports whether a should replace b as the worst-case band.
func beats(a, b TTest) bool {
	ta, tb := math.Abs(a.T), math.Abs(b.T)
	if ta != tb {
		return ta > tb
	}
	return a.N() > b.N()
}
