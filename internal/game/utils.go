package game

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
)

// atomicFloat stores a float64 as its bit pattern so pointer input can be
// written from any goroutine while a frame reads it.
// Zero value is ready to use (represents 0.0)
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *atomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// jitter returns rng.Float64()*spread + base, i.e. a value in [base, base+spread).
func jitter(rng *rand.Rand, spread, base float64) float64 {
	return rng.Float64()*spread + base
}

// pick samples uniformly with replacement.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
