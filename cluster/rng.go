// Package cluster - RNG utilities for the Gibbs sweep.
//
// This file centralizes deterministic random generation for the sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across platforms and
//     worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics or logging; sentinel errors live in types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The sweep never shares one:
//     every (iteration, shape) pair gets its own stream via deriveSeed, so
//     parallel and serial sweeps consume identical randomness per shape.
package cluster

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed policy: 0 ⇒ defaultRNGSeed, otherwise the
// caller's seed verbatim.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, eliminating correlations
// between consecutive streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG creates the deterministic RNG stream for one (iteration, shape)
// pair. Streams are independent of sweep order, which is what makes the
// parallel sweep reproduce the serial one.
//
// Complexity: O(1).
func streamRNG(seed int64, iteration, shapeIdx, shapes int) *rand.Rand {
	var stream uint64
	stream = uint64(iteration)*uint64(shapes) + uint64(shapeIdx)

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// drawCategorical samples an index i with probability proportional to
// exp(logw[i] − max(logw)). The max shift keeps the exponentials in range;
// a zero or non-finite total mass falls back to a uniform draw so numerical
// degeneracy can never abort the chain.
//
// Complexity: O(n).
func drawCategorical(logw []float64, rng *rand.Rand) int {
	var (
		n    = len(logw)
		mx   float64
		i    int
		w    float64
		tot  float64
		mass []float64
	)
	if n == 1 {
		return 0
	}

	mx = logw[0]
	for i = 1; i < n; i++ {
		if logw[i] > mx {
			mx = logw[i]
		}
	}

	mass = make([]float64, n)
	for i = 0; i < n; i++ {
		// If every entry is −Inf the shifted value is NaN and so is tot,
		// which routes into the uniform fallback below.
		w = math.Exp(logw[i] - mx)
		mass[i] = w
		tot += w
	}
	if !(tot > 0) || tot != tot {
		// Degenerate mass (all-zero or NaN): uniform fallback.
		return rng.Intn(n)
	}

	var u float64
	u = rng.Float64() * tot
	for i = 0; i < n; i++ {
		u -= mass[i]
		if u < 0 {
			return i
		}
	}

	// Floating-point slack on the final cumulative step.
	return n - 1
}
