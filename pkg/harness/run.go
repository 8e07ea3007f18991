package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/shivanshkc/ctbench/pkg/csvexport"
	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// ErrNoBenchMatched is returned by a continuous run whose filter matches no bench.
var ErrNoBenchMatched = errors.New("no benchmark matched the filter")

// Options controls a run.
type Options struct {
	// Filter keeps only benches whose name contains it. Empty keeps all.
	Filter string
	// Continuous repeatedly runs the first matching bench, accumulating samples,
	// until the context is canceled.
	Continuous bool
	// Out receives raw samples as CSV when non-nil.
	Out io.Writer
	// RunnerOptions are passed to every ctbench.Runner the harness creates.
	RunnerOptions []ctbench.Option
	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Run executes the benches selected by opts and reports progress to handler.
//
// In one-shot mode every matching bench runs once on a fresh Runner and Run returns
// ctx.Err() if canceled between benches. In continuous mode Run returns nil once ctx is
// canceled; cancellation is observed between rounds, never inside one.
func Run(ctx context.Context, opts Options, benches []Bench, handler Handler) error {
	filtered := Filter(benches, opts.Filter)

	var out *csvexport.Writer
	if opts.Out != nil {
		w, err := csvexport.NewWriter(opts.Out)
		if err != nil {
			return err
		}
		out = w
	}

	r := &run{opts: opts, out: out, handler: handler, log: opts.logger()}
	if opts.Continuous {
		return r.continuous(ctx, filtered)
	}
	return r.oneShot(ctx, filtered)
}

type run struct {
	opts    Options
	out     *csvexport.Writer
	handler Handler
	log     *slog.Logger
}

func (r *run) oneShot(ctx context.Context, benches []Bench) error {
	names := make([]string, len(benches))
	for i, b := range benches {
		names[i] = b.Name
	}
	if err := r.handler(Event{Kind: EventBegin, Names: names}); err != nil {
		return err
	}

	for _, b := range benches {
		if err := ctx.Err(); err != nil {
			return err
		}
		runner := ctbench.NewRunner(r.opts.RunnerOptions...)
		seed := b.seed()
		if err := r.handler(Event{Kind: EventSeed, Name: b.Name, Seed: seed}); err != nil {
			return err
		}
		if err := r.round(b, runner, NewRand(seed), 1); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) continuous(ctx context.Context, benches []Bench) error {
	if err := r.handler(Event{Kind: EventContinuousStart}); err != nil {
		return err
	}
	if len(benches) == 0 {
		if r.opts.Filter != "" {
			return fmt.Errorf("%w: %q", ErrNoBenchMatched, r.opts.Filter)
		}
		return nil
	}

	b := benches[0]
	runner := ctbench.NewRunner(r.opts.RunnerOptions...)
	seed := b.seed()
	rng := NewRand(seed)
	if err := r.handler(Event{Kind: EventSeed, Name: b.Name, Seed: seed}); err != nil {
		return err
	}

	for round := 1; ; round++ {
		if err := r.round(b, runner, rng, round); err != nil {
			return err
		}
		if ctx.Err() != nil {
			r.log.Debug("continuous run stopped", "bench", b.Name, "rounds", round, "samples", runner.Len())
			return nil
		}
	}
}

// round runs the bench body once on runner, evaluates everything recorded so far and
// exports the samples the round added.
func (r *run) round(b Bench, runner *ctbench.Runner, rng *rand.Rand, round int) error {
	if err := r.handler(Event{Kind: EventWait, Name: b.Name, Round: round}); err != nil {
		return err
	}

	before := runner.Len()
	b.Fn(runner, rng)
	r.log.Debug("round complete", "bench", b.Name, "round", round,
		"new_samples", runner.Len()-before,
		"left", runner.Store().Count(ctbench.Left),
		"right", runner.Store().Count(ctbench.Right))

	report, err := runner.Evaluate()
	if err != nil && !errors.Is(err, ctbench.ErrInsufficientData) {
		return err
	}
	if err := r.handler(Event{Kind: EventResult, Name: b.Name, Round: round, Report: report, Err: err}); err != nil {
		return err
	}

	if r.out != nil {
		return r.out.WriteSamples(b.Name, runner.Store().Since(before))
	}
	return nil
}
