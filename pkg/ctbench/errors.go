package ctbench

import "errors"

// Errors returned by the engine. Callers test for them with errors.Is.
var (
	// ErrInsufficientData is returned by Evaluate and Aggregate when there are too few samples,
	// or when no percentile band produced a usable t-test. It means "no conclusion yet",
	// never "no leak".
	ErrInsufficientData = errors.New("ctbench: insufficient data")

	// ErrBandSkipped wraps the reason a single band could not be evaluated.
	ErrBandSkipped = errors.New("ctbench: band skipped")

	// ErrInvalidBandTable is returned when a percentile table is empty, unordered or out of range.
	ErrInvalidBandTable = errors.New("ctbench: invalid band table")
)
