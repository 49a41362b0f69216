// Package shape defines the observation model shared by the polyclust
// sampler and reconstructor: cyclic feature vectors and the dihedral
// registration group acting on them.
//
// A closed polygon with k sides is observed only through two length-k
// vectors of proportions:
//
//   - Lengths — side-length proportions around the boundary,
//   - Angles  — interior-angle proportions around the boundary.
//
// Both vectors are cyclic: index 0 is an arbitrary traversal start, and the
// traversal direction (clockwise vs counter-clockwise) is arbitrary too. Two
// feature pairs that differ only by a cyclic shift and/or a reversal
// therefore describe the same polygon. The shift/reversal pair is modeled by
// the Registration value type; the admissible registrations of a k-gon form
// the dihedral group of order 2k.
//
// Conventions:
//
//   - Apply(v, Registration{Shift: s}) reads v forward starting at index s.
//   - Apply(v, Registration{Shift: s, Reflect: true}) reads v backward
//     starting at index s. With this convention every reflecting
//     registration is its own inverse.
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrTooFewSides       — a polygon needs k ≥ 3 sides.
//   - ErrDimensionMismatch — Lengths and Angles disagree in length, or the
//     two dataset matrices disagree in row count.
//   - ErrRaggedMatrix      — a dataset matrix has rows of unequal length.
//   - ErrNaNInf            — a non-finite feature value was encountered.
//   - ErrShiftOutOfRange   — a registration shift outside [0, k).
package shape
