package ctbench

// Runner times invocations of the code under test and evaluates the recorded samples.
//
// Each benchmark run owns one Runner. It is not safe for concurrent use.
type Runner struct {
	clock Clock
	bands BandTable
	store Store
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the default monotonic clock.
func WithClock(clock Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithBandTable replaces the default percentile table. The table is assumed valid;
// callers loading it from user input should call Validate first.
func WithBandTable(table BandTable) Option {
	return func(r *Runner) {
		r.bands = table
	}
}

// NewRunner returns a Runner with an empty Store.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock: MonotonicClock(),
		bands: DefaultBandTable(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOne times a single call of f and records it under class. The result of f is consumed
// so the call cannot be optimized away.
//
// A panic in f is not recovered and aborts the trial.
func RunOne[T any](r *Runner, class Class, f func() T) {
	r.store.Record(class, measure(r.clock, f))
}

// Run is RunOne for closures without a result.
func (r *Runner) Run(class Class, f func()) {
	RunOne(r, class, func() struct{} {
		f()
		return struct{}{}
	})
}

// Evaluate computes the leakage report over every sample recorded so far.
//
// It returns ErrInsufficientData when there are too few samples or no band qualifies.
// Calling it repeatedly without new samples yields identical reports.
func (r *Runner) Evaluate() (Report, error) {
	left, right := r.store.Snapshot()
	return EvaluateSamples(r.bands, left, right)
}

// EvaluateSamples runs band selection and aggregation over raw samples.
func EvaluateSamples(table BandTable, left, right []uint64) (Report, error) {
	if err := checkSampleCount(len(left) + len(right)); err != nil {
		return Report{}, err
	}
	ls, rs := sortedFloats(left), sortedFloats(right)
	bands := selectBandsSorted(table, mergeSorted(ls, rs))
	return aggregateSorted(bands, ls, rs)
}

// Store returns the Runner's sample store. It is borrowed and must not be written to.
func (r *Runner) Store() *Store {
	return &r.store
}

// Len returns the number of samples recorded so far.
func (r *Runner) Len() int {
	return r.store.Len()
}
