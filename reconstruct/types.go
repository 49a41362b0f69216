package reconstruct

import (
	"errors"
	"math"
)

var (
	// ErrDimensionMismatch is returned when the angle and length vectors
	// differ in length.
	ErrDimensionMismatch = errors.New("reconstruct: angle and length vectors differ in length")

	// ErrTooFewSides is returned for k < 3; no closed polygon exists.
	ErrTooFewSides = errors.New("reconstruct: polygon needs at least 3 sides")

	// ErrNonPositiveFeature is returned when a proportion is zero or
	// negative; every side and interior angle must carry positive mass.
	ErrNonPositiveFeature = errors.New("reconstruct: proportions must be positive")

	// ErrNaNInf is returned when a feature value is NaN or ±Inf.
	ErrNaNInf = errors.New("reconstruct: NaN or Inf feature value")

	// ErrBadTol is returned when Options.Tol or Options.AngleTol is not a
	// finite positive number.
	ErrBadTol = errors.New("reconstruct: tolerances must be finite positive numbers")

	// ErrBadScale is returned when Options.Scale is not a finite positive
	// number.
	ErrBadScale = errors.New("reconstruct: Scale must be a finite positive number")

	// ErrBadMaxResults is returned when Options.MaxResults < 0.
	ErrBadMaxResults = errors.New("reconstruct: MaxResults must be non-negative")

	// ErrNoClosure is returned when no sign assignment closes the walk
	// within tolerance. Distinct from every configuration error: the input
	// was well-formed but describes no closed k-gon.
	ErrNoClosure = errors.New("reconstruct: no sign assignment closes the polygon")
)

// Point is a 2D vertex position.
type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered closed vertex chain; the edge from the last vertex
// back to the first is implied. A reconstructed k-gon has exactly k
// vertices.
type Polygon []Point

// Options tunes the reconstruction search.
//
//   - Tol        — closure tolerance: the walk's end point must land within
//     Tol of the origin. Also the slack of the reachability prune, so
//     loosening it widens the search rather than silently accepting less.
//   - AngleTol   — tolerance on the ±2π total-turning requirement.
//   - Scale      — perimeter of the reconstructed polygon; proportions are
//     normalized, so Scale fixes the absolute size.
//   - MaxResults — cap on returned candidates; 0 means unbounded.
type Options struct {
	Tol        float64
	AngleTol   float64
	Scale      float64
	MaxResults int
}

// DefaultOptions returns the canonical search configuration: unit
// perimeter, tight tolerances, unbounded results.
func DefaultOptions() Options {
	return Options{
		Tol:        1e-6,
		AngleTol:   1e-7,
		Scale:      1,
		MaxResults: 0,
	}
}

// validate checks the options; each violation maps to its own sentinel.
//
// Complexity: O(1).
func (o Options) validate() error {
	if !(o.Tol > 0) || math.IsInf(o.Tol, 0) || !(o.AngleTol > 0) || math.IsInf(o.AngleTol, 0) {
		return ErrBadTol
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return ErrBadScale
	}
	if o.MaxResults < 0 {
		return ErrBadMaxResults
	}

	return nil
}

// validateFeatures checks one shape's raw proportion vectors.
//
// Complexity: O(k).
func validateFeatures(angles, lengths []float64) error {
	if len(angles) != len(lengths) {
		return ErrDimensionMismatch
	}
	if len(angles) < 3 {
		return ErrTooFewSides
	}

	var i int
	for i = 0; i < len(angles); i++ {
		if math.IsNaN(angles[i]) || math.IsInf(angles[i], 0) ||
			math.IsNaN(lengths[i]) || math.IsInf(lengths[i], 0) {
			return ErrNaNInf
		}
		if angles[i] <= 0 || lengths[i] <= 0 {
			return ErrNonPositiveFeature
		}
	}

	return nil
}
