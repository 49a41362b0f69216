// Package reconstruct inverts a shape's normalized feature pair — interior
// angle proportions and side-length proportions — into explicit closed
// planar polygons.
//
// Geometry: for a k-gon whose interior angles sum to (k−2)π, the angle
// proportion aᵢ fixes the interior angle θᵢ = aᵢ·(k−2)·π and thus the
// unsigned turning angle τᵢ = π − θᵢ at vertex i; the length proportion
// fixes edge i's share of the perimeter (Options.Scale). A candidate
// polygon is a turtle walk from the origin: lay an edge along the current
// heading, turn by ±τ at the next vertex, repeat. The proportion alone does
// not determine the turn's chirality, so each of the k turns contributes an
// independent sign — 2^k candidate walks.
//
// Search: the sign assignments are enumerated by a depth-first
// branch-and-bound, never materialized as the full 2^k set. Two admissible
// prunes cut partial walks that cannot possibly be accepted:
//
//   - reachability — the distance back to the origin already exceeds the
//     remaining perimeter plus the closure tolerance;
//   - turning feasibility — no completion of the signed turn sum can reach
//     ±2π (the total turning of a simple closed walk) within tolerance.
//
// A walk is accepted only if it closes within Options.Tol, carries a total
// turning of ±2π within Options.AngleTol, and has exactly k vertices. All
// surviving candidates are returned in deterministic branch order (positive
// turn explored first); the solution multiplicity is intrinsic — at minimum
// a closed shape and its mirror both satisfy the features.
//
// Reconstruct is pure and stateless: safe to call concurrently across
// shapes.
//
// Errors (sentinel):
//
//   - ErrDimensionMismatch, ErrTooFewSides, ErrNonPositiveFeature,
//     ErrNaNInf — malformed feature input.
//   - ErrBadTol, ErrBadScale, ErrBadMaxResults — malformed options.
//   - ErrNoClosure — no sign assignment closes the polygon: a distinct
//     outcome, never conflated with a successful reconstruction.
package reconstruct
