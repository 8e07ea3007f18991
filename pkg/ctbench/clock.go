package ctbench

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Clock is a monotonic tick counter.
//
// Ticks have no fixed unit. The default clock counts nanoseconds, but any counter works
// as long as it is read the same way for both classes.
type Clock interface {
	Now() uint64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() uint64

// Now implements Clock.
func (f ClockFunc) Now() uint64 { return f() }

// MonotonicClock returns a nanosecond clock backed by the runtime's monotonic time source.
func MonotonicClock() Clock {
	return monotonicClock{epoch: time.Now()}
}

type monotonicClock struct {
	epoch time.Time
}

func (c monotonicClock) Now() uint64 {
	return uint64(time.Since(c.epoch))
}

// barrier is written after every measured call. The atomic store cannot be removed or
// reordered by the compiler, which keeps the closing clock read after the call.
var barrier atomic.Uint64

// measure times exactly one call of f.
//
// A clock that goes backwards yields a huge wrapped value. It is recorded like any other
// sample and left to percentile cropping.
//
//go:noinline
func measure[T any](clock Clock, f func() T) uint64 {
	start := clock.Now()
	v := f()
	runtime.KeepAlive(v)
	barrier.Add(1)
	end := clock.Now()
	return end - start
}
