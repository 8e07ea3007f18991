package ctbench

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// SignificanceT is the |t| above which a result is treated as evidence of a leak.
const SignificanceT = 5

// Report is the worst-case leakage signal over all bands.
type Report struct {
	// MaxT is the signed t-statistic of the band with the largest |t|.
	MaxT float64
	// N is the combined cropped sample count of that band.
	N int
	// MaxTau is MaxT / sqrt(N).
	MaxTau float64
	// MeasurementsToSignificance is (5 / MaxTau)^2, the sample count at which
	// the current effect size would reach |t| = 5.
	MeasurementsToSignificance float64
	// Band is the band that produced MaxT.
	Band Band

	// Left and Right describe the uncropped class distributions.
	Left, Right Summary
}

func newReport(best TTest, left, right []float64) Report {
	n := best.N()
	tau := best.T / math.Sqrt(float64(n))
	return Report{
		MaxT:                       best.T,
		N:                          n,
		MaxTau:                     tau,
		MeasurementsToSignificance: math.Pow(SignificanceT/tau, 2),
		Band:                       best.Band,
		Left:                       summarize(left),
		Right:                      summarize(right),
	}
}

// Leaky reports whether |MaxT| exceeds SignificanceT.
func (r Report) Leaky() bool {
	return math.Abs(r.MaxT) > SignificanceT
}

// String renders the report line:
//
//	n == +0.200M, max t = +61.61472, max tau = +0.13777, (5/tau)^2 = 1317
func (r Report) String() string {
	return fmt.Sprintf("n == %+0.3fM, max t = %+0.5f, max tau = %+0.5f, (5/tau)^2 = %s",
		float64(r.N)/1e6, r.MaxT, r.MaxTau, formatCount(r.MeasurementsToSignificance))
}

// formatCount truncates to an integer. A zero tau gives an unbounded count.
func formatCount(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) || x >= math.MaxInt64 {
		return "inf"
	}
	return fmt.Sprintf("%d", int64(x))
}

// Summary holds descriptive statistics of one class, in ticks.
type Summary struct {
	Count  int
	Min    float64
	Median float64
	Mean   float64
	Max    float64
}

// summarize expects ascending input.
func summarize(sorted []float64) Summary {
	if len(sorted) == 0 {
		return Summary{}
	}
	sample := stats.Sample{Xs: sorted, Sorted: true}
	lo, hi := sample.Bounds()
	return Summary{
		Count:  len(sorted),
		Min:    lo,
		Median: sample.Quantile(0.5),
		Mean:   sample.Mean(),
		Max:    hi,
	}
}
