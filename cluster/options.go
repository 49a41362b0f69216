package cluster

import "math"

// defaultBandwidth is the Gaussian score scale used when callers keep the
// default options. Proportion vectors live on the unit simplex, where
// typical within-cluster perturbations are a few percent per coordinate.
const defaultBandwidth = 0.05

// Options configures one sampling run.
//
//   - K               — number of latent clusters, ≥ 1.
//   - Iter            — total iteration count, ≥ 1.
//   - Burn            — burn-in iterations discarded from the trace,
//     0 ≤ Burn < Iter.
//   - WeightL/WeightA — non-negative channel weights scaling the length vs
//     angle contribution to the registration score (user knobs, not
//     inferred).
//   - EstimateShift   — infer each shape's cyclic offset; when false the
//     shift is held at 0 (ablation runs).
//   - EstimateReflect — infer each shape's reflection; when false held at
//     forward.
//   - Bandwidth       — Gaussian scale of the registration score, > 0.
//   - Seed            — RNG seed; 0 selects the fixed default stream so
//     default runs stay reproducible.
//   - Workers         — goroutines for the per-shape sweep; 0 or 1 means
//     serial. The output is identical for every value.
type Options struct {
	K    int
	Iter int
	Burn int

	WeightL float64
	WeightA float64

	EstimateShift   bool
	EstimateReflect bool

	Bandwidth float64
	Seed      int64
	Workers   int
}

// DefaultOptions returns the canonical configuration: both channels weighted
// equally, both registration axes estimated, serial sweep, deterministic
// default seed. K, Iter and Burn are left for the caller (K=1, Iter=1000,
// Burn=500 as a starting point).
func DefaultOptions() Options {
	return Options{
		K:               1,
		Iter:            1000,
		Burn:            500,
		WeightL:         1,
		WeightA:         1,
		EstimateShift:   true,
		EstimateReflect: true,
		Bandwidth:       defaultBandwidth,
	}
}

// validate checks internal consistency of the options without referencing
// the dataset. Each violated constraint maps to its own sentinel so the
// offending parameter is named.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.K < 1 {
		return ErrBadClusterCount
	}
	if o.Iter < 1 {
		return ErrBadIterations
	}
	if o.Burn < 0 || o.Burn >= o.Iter {
		return ErrBadBurn
	}
	if o.WeightL < 0 || o.WeightA < 0 || math.IsNaN(o.WeightL) || math.IsNaN(o.WeightA) {
		return ErrNegativeWeight
	}
	if !(o.Bandwidth > 0) || math.IsInf(o.Bandwidth, 0) {
		return ErrBadBandwidth
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
