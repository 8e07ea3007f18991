package harness

import "github.com/shivanshkc/ctbench/pkg/ctbench"

// EventKind identifies a harness event.
type EventKind int

const (
	// EventBegin starts a one-shot run. Names lists the benches that will run.
	EventBegin EventKind = iota
	// EventContinuousStart starts a continuous run.
	EventContinuousStart
	// EventSeed reports the seed chosen for Name.
	EventSeed
	// EventWait is sent before Name runs a round.
	EventWait
	// EventResult carries the evaluation of Name after a round. Err is set, and wraps
	// ctbench.ErrInsufficientData, when no conclusion could be drawn.
	EventResult
)

// Event is a progress notification from Run.
type Event struct {
	Kind   EventKind
	Name   string
	Names  []string
	Seed   uint64
	Round  int
	Report ctbench.Report
	Err    error
}

// Handler receives events. A returned error stops the run and is returned by Run.
type Handler func(Event) error
