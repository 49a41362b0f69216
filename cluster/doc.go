// Package cluster implements registration-aware MCMC clustering of closed
// planar polygonal shapes.
//
// Each of m shapes is observed through two length-k proportion vectors
// (side lengths and interior angles, see package shape). Because the vectors
// are cyclic and direction-free, every shape carries a latent registration —
// a (shift, reflect) pair from the dihedral group of order 2k — on top of
// its latent cluster label. Cluster jointly infers both by Gibbs sampling.
//
// Algorithm outline (one iteration, fixed templates from the previous one):
//
//  1. For every shape, resample its cluster label: for each of the K
//     clusters take the best admissible registration score (package
//     register) and draw a label from the categorical distribution these
//     scores induce.
//  2. When estimated, resample the shape's shift over its k options given
//     the new label, then its reflection over {forward, backward}; both are
//     categorical draws weighted by score. Disabled axes stay at the
//     identity.
//  3. Recompute every cluster's template as the elementwise mean of its
//     members' registered feature vectors; clusters left without members
//     keep their previous template.
//  4. Past burn-in, record labels, shifts and reflections into the trace.
//
// The chain runs for a fixed Options.Iter iterations with no dynamic
// convergence check; point estimates (posterior modes) and the full
// discrete trace are returned for post-hoc diagnostics.
//
// Determinism and concurrency:
//
//   - All randomness flows from Options.Seed through SplitMix64-derived
//     per-shape streams, so a fixed seed reproduces the run bit-for-bit.
//   - Within an iteration the per-shape resampling is conditionally
//     independent given the previous templates; Options.Workers > 1 fans
//     the sweep out over an errgroup. Per-shape streams make the result
//     identical for every worker count.
//
// Failure model (fail fast on configuration, recover locally at runtime):
//
//   - Configuration errors (bad K, Burn ≥ Iter, mismatched matrices,
//     negative weights, ...) surface as sentinels before sampling starts.
//   - Numerical degeneracy (zero total categorical mass) falls back to a
//     uniform draw mid-run and is never fatal.
//   - Empty clusters are never fatal; their templates persist.
//
// Complexity per iteration: O(m·K·k²) with both registration axes estimated
// (2k candidate registrations, O(k) score each), plus O(m·k) for template
// updates. Memory: O(m·k + K·k) state plus O((Iter−Burn)·m) trace.
package cluster
