// Package register scores how well a shape, under a candidate registration,
// matches a cluster template.
//
// The score is a weighted Gaussian log-likelihood of the registered feature
// pair against the template:
//
//	score = −( wL·‖L∘reg − T.L‖² + wA·‖A∘reg − T.A‖² ) / (2·bandwidth²)
//
// where v∘reg denotes shape.Apply(v, reg). The score is defined for every
// admissible (shift, reflect) pair; wL and wA are user-facing knobs scaling
// the relative contribution of the length and angle channels, validated
// non-negative. The bandwidth plays the role of the Gaussian scale and must
// be positive.
//
// Deterministic tie-break: Best prefers the lowest shift, and the identity
// reflection within a shift, when scores tie exactly. This keeps MAP
// summaries reproducible; posterior draws elsewhere remain free to pick any
// maximizer.
//
// Model holds preallocated scratch for the hot scoring loop and is NOT safe
// for concurrent use; create one Model per goroutine (the sampler does).
//
// Errors (sentinel):
//
//   - ErrNegativeWeight   — a channel weight below zero.
//   - ErrBadBandwidth     — bandwidth ≤ 0, NaN or Inf.
//   - ErrTemplateMismatch — template and shape disagree in polygon order.
package register
