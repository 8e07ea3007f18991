// Package harness runs a caller-supplied list of constant-time benchmarks against the
// ctbench engine, in one-shot or continuous mode, and reports progress through events.
package harness

import (
	"encoding/binary"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// BenchFunc is a benchmark body. It should call the runner many times (tens of thousands)
// with both classes, interleaving them randomly using rng.
type BenchFunc func(r *ctbench.Runner, rng *rand.Rand)

// Bench is a named benchmark. A nil Seed means a random seed is drawn for every run.
type Bench struct {
	Name string
	Seed *uint64
	Fn   BenchFunc
}

// Seed is a convenience for building a Bench with a fixed seed.
func Seed(seed uint64) *uint64 {
	return &seed
}

// Filter returns the benches whose name contains substr, sorted by name.
// An empty substr matches everything. The input slice is not modified.
func Filter(benches []Bench, substr string) []Bench {
	out := make([]Bench, 0, len(benches))
	for _, b := range benches {
		if strings.Contains(b.Name, substr) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b Bench) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// NewRand returns the ChaCha8 generator handed to a bench seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

func (b Bench) seed() uint64 {
	if b.Seed != nil {
		return *b.Seed
	}
	return rand.Uint64()
}
