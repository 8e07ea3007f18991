// Package ctbench detects timing side-channels by comparing the execution-time distributions
// of two caller-chosen input classes.
//
// A benchmark body drives a Runner: every invocation of the code under test is timed and
// recorded against a Class. Evaluate then crops the pooled samples at a table of percentiles,
// runs a Welch t-test per crop and reports the worst one. A large |t| is evidence of a leak.
// A small one proves nothing.
//
// The engine is single-threaded by contract. A Runner and its Store must only be used from
// one goroutine at a time.
package ctbench

// Class labels which input-generation strategy produced a measurement.
type Class uint8

const (
	// Left is the first input class.
	Left Class = iota
	// Right is the second input class.
	Right
)

// String renders the class as the literal used in reports and CSV exports.
func (c Class) String() string {
	switch c {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Sample is one recorded measurement.
type Sample struct {
	Class Class
	Ticks uint64
}
