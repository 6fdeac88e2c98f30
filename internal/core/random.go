package core

import (
	"math"
	"math/rand"
)

// RNG samples the uniform ranges used by spawn logic.
// It wraps a seeded math/rand source so runs are reproducible.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a sampler seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// UniformFloat returns a value uniformly distributed over [min, max].
// Bounds may have any sign; swapped bounds are reordered.
func (g *RNG) UniformFloat(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	switch {
	case max < 0:
		// Both negative: sample the mirrored positive range and reflect back.
		lo, hi := -max, -min
		return -(lo + g.r.Float64()*(hi-lo))
	case min < 0:
		// Straddles zero: spread from -|min| across the whole span.
		neg := -min
		return g.r.Float64()*(neg+max) - neg
	default:
		return min + g.r.Float64()*(max-min)
	}
}

// UniformInt returns an integer uniformly drawn from [ceil(min), floor(max)].
// An empty integer range yields ceil(min).
func (g *RNG) UniformInt(min, max float64) int {
	lo := int(math.Ceil(math.Min(min, max)))
	hi := int(math.Floor(math.Max(min, max)))
	if hi < lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}
