// Package examples holds stock benchmarks: a few that leak through timing and a few that
// should not.
package examples

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"math/rand/v2"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
	"github.com/shivanshkc/ctbench/pkg/harness"
)

// Trials is the number of measurements each stock bench takes per round.
const Trials = 100_000

const vecLen = 100

// All returns the stock benches. Arith carries a fixed seed so its runs are reproducible.
func All() []harness.Bench {
	return []harness.Bench{
		{Name: "arith", Seed: harness.Seed(0x6b6c816d), Fn: Arith},
		{Name: "vec_eq", Fn: VecEq},
		{Name: "bytes_equal", Fn: BytesEqual},
		{Name: "subtle_eq", Fn: SubtleEq},
		{Name: "hmac_equal", Fn: HMACEqual},
	}
}

// randomClasses returns n classes chosen by coin flip.
func randomClasses(rng *rand.Rand, n int) []ctbench.Class {
	classes := make([]ctbench.Class, n)
	for i := range classes {
		if rng.IntN(2) == 0 {
			classes[i] = ctbench.Left
		} else {
			classes[i] = ctbench.Right
		}
	}
	return classes
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.UintN(256))
	}
	return b
}

// pairs builds one input pair per class. Left pairs are equal; Right pairs differ at index 5.
func pairs(rng *rand.Rand, classes []ctbench.Class) [][2][]byte {
	inputs := make([][2][]byte, len(classes))
	for i, class := range classes {
		a := randomBytes(rng, vecLen)
		b := bytes.Clone(a)
		if class == ctbench.Right {
			b[5] ^= 0xff
		}
		inputs[i] = [2][]byte{a, b}
	}
	return inputs
}

// Arith times plain arithmetic on random inputs. Both classes are drawn the same way,
// so t should stay small.
func Arith(r *ctbench.Runner, rng *rand.Rand) {
	classes := randomClasses(rng, Trials)
	inputs := make([]uint64, Trials)
	for i := range inputs {
		inputs[i] = rng.Uint64()
	}

	for i, class := range classes {
		u := inputs[i]
		ctbench.RunOne(r, class, func() uint64 { return ((u + 10) / 6) << 5 })
	}
}

// VecEq times a byte-by-byte comparison that returns at the first mismatch. It leaks.
func VecEq(r *ctbench.Runner, rng *rand.Rand) {
	classes := randomClasses(rng, Trials)
	inputs := pairs(rng, classes)

	for i, class := range classes {
		a, b := inputs[i][0], inputs[i][1]
		ctbench.RunOne(r, class, func() bool { return earlyExitEqual(a, b) })
	}
}

// BytesEqual times bytes.Equal, which is not constant-time.
func BytesEqual(r *ctbench.Runner, rng *rand.Rand) {
	classes := randomClasses(rng, Trials)
	inputs := pairs(rng, classes)

	for i, class := range classes {
		a, b := inputs[i][0], inputs[i][1]
		ctbench.RunOne(r, class, func() bool { return bytes.Equal(a, b) })
	}
}

// SubtleEq times crypto/subtle.ConstantTimeCompare on the same inputs as VecEq.
func SubtleEq(r *ctbench.Runner, rng *rand.Rand) {
	classes := randomClasses(rng, Trials)
	inputs := pairs(rng, classes)

	for i, class := range classes {
		a, b := inputs[i][0], inputs[i][1]
		ctbench.RunOne(r, class, func() int { return subtle.ConstantTimeCompare(a, b) })
	}
}

// HMACEqual times MAC verification with hmac.Equal. Left tags are valid, Right tags
// are corrupted in the first byte.
func HMACEqual(r *ctbench.Runner, rng *rand.Rand) {
	key := randomBytes(rng, 32)
	classes := randomClasses(rng, Trials)
	expected := make([][]byte, Trials)
	received := make([][]byte, Trials)
	for i, class := range classes {
		mac := hmac.New(sha256.New, key)
		mac.Write(randomBytes(rng, 64))
		expected[i] = mac.Sum(nil)
		received[i] = bytes.Clone(expected[i])
		if class == ctbench.Right {
			received[i][0] ^= 0x01
		}
	}

	for i, class := range classes {
		want, got := expected[i], received[i]
		ctbench.RunOne(r, class, func() bool { return hmac.Equal(want, got) })
	}
}

func earlyExitEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
