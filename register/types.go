package register

import (
	"errors"
	"math"
)

var (
	// ErrNegativeWeight is returned when a channel weight is negative; the
	// weights scale squared distances and must be ≥ 0.
	ErrNegativeWeight = errors.New("register: channel weight must be non-negative")

	// ErrBadBandwidth is returned when the Gaussian bandwidth is not a
	// finite positive number.
	ErrBadBandwidth = errors.New("register: bandwidth must be a finite positive number")

	// ErrTemplateMismatch is returned when a template's polygon order
	// differs from the shape's.
	ErrTemplateMismatch = errors.New("register: template and shape polygon orders differ")
)

// Template is a cluster's canonical feature pair: the mean length and angle
// proportions of its registered members. Both slices have the cluster's
// common polygon order k.
type Template struct {
	L []float64
	A []float64
}

// NewTemplate copies the given vectors into a Template.
//
// Errors: ErrTemplateMismatch when the lengths differ.
//
// Complexity: O(k).
func NewTemplate(l, a []float64) (Template, error) {
	if len(l) != len(a) {
		return Template{}, ErrTemplateMismatch
	}
	t := Template{L: make([]float64, len(l)), A: make([]float64, len(a))}
	copy(t.L, l)
	copy(t.A, a)

	return t, nil
}

// K reports the template's polygon order.
func (t Template) K() int { return len(t.L) }

// validateKnobs checks the shared score parameters.
func validateKnobs(wL, wA, bandwidth float64) error {
	if wL < 0 || wA < 0 || math.IsNaN(wL) || math.IsNaN(wA) {
		return ErrNegativeWeight
	}
	if !(bandwidth > 0) || math.IsInf(bandwidth, 0) {
		return ErrBadBandwidth
	}

	return nil
}

// round1e9 stabilizes an exported score at 1e−9 resolution to prevent
// cross-platform floating-point drift in summaries.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
