// Package rng provides the seeded random source that every stochastic
// calculation in the simulation derives from. Given the same seed, two
// independently constructed sources produce identical sequences, which is
// what makes whole game runs replayable bit-for-bit.
package rng

import (
	"math"
	"math/rand"
)

// Source produces a float64 in [0, 1) and advances hidden state on every
// call. All higher-level randomness (breeding, pricing, naming, spot
// jitter) must flow through a single Source per turn.
type Source func() float64

// Linear congruential generator constants. Fixed so that sequences are
// portable across implementations and languages.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// New returns a deterministic Source for the given seed. Negative seeds
// are accepted; the sign is discarded before the initial modulus.
func New(seed int64) Source {
	state := seed
	if state < 0 {
		state = -state
	}
	state %= lcgModulus

	return func() float64 {
		state = (lcgMultiplier*state + lcgIncrement) % lcgModulus
		return float64(state) / float64(lcgModulus)
	}
}

// NewFloat seeds a Source from a possibly fractional seed. The fractional
// part is floored away before seeding.
func NewFloat(seed float64) Source {
	return New(int64(math.Floor(seed)))
}

// System returns a non-deterministic Source. It is the fallback for call
// sites that were not handed an explicit generator.
func System() Source {
	return rand.Float64
}

func orSystem(rnd Source) Source {
	if rnd == nil {
		return rand.Float64
	}
	return rnd
}

// Pick returns a uniformly random element of items. Items must be non-empty.
func Pick[T any](rnd Source, items []T) T {
	rnd = orSystem(rnd)
	return items[int(rnd()*float64(len(items)))]
}

// Flip returns a or b with equal probability, consuming one draw.
func Flip[T any](rnd Source, a, b T) T {
	rnd = orSystem(rnd)
	if rnd() < 0.5 {
		return a
	}
	return b
}

// IntBetween returns a uniformly random integer in [lo, hi], inclusive on
// both ends, consuming one draw.
func IntBetween(rnd Source, lo, hi int) int {
	rnd = orSystem(rnd)
	return lo + int(rnd()*float64(hi-lo+1))
}

// Normal draws a normally distributed value via the Box-Muller transform,
// consuming exactly two uniform draws. Only the cosine branch is used; no
// second value is cached, so call counts stay predictable for replay.
func Normal(rnd Source, mean, stddev float64) float64 {
	rnd = orSystem(rnd)
	u1 := rnd()
	u2 := rnd()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}
