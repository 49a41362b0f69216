package shape

import (
	"errors"
	"math"
)

var (
	// ErrTooFewSides is returned when a feature vector describes fewer than
	// three sides; no closed polygon exists below k=3.
	ErrTooFewSides = errors.New("shape: polygon needs at least 3 sides")

	// ErrDimensionMismatch is returned when paired feature vectors or
	// matrices disagree in length or row count.
	ErrDimensionMismatch = errors.New("shape: dimension mismatch between length and angle features")

	// ErrRaggedMatrix is returned when a feature matrix has rows of unequal
	// length; the dataset contract requires a rectangular m×k matrix.
	ErrRaggedMatrix = errors.New("shape: ragged feature matrix")

	// ErrNaNInf is returned when a NaN or ±Inf feature value is encountered;
	// all proportions must be finite.
	ErrNaNInf = errors.New("shape: NaN or Inf feature value")

	// ErrShiftOutOfRange is returned when a registration shift lies outside
	// [0, k) for the polygon order k at hand.
	ErrShiftOutOfRange = errors.New("shape: registration shift out of range")
)

// Features is one shape's observation: side-length and interior-angle
// proportions read around the boundary. Both slices have the same length
// k ≥ 3 and index i of one refers to the same boundary position as index i
// of the other.
type Features struct {
	Lengths []float64
	Angles  []float64
}

// NewFeatures validates and wraps one shape's feature pair.
// The slices are referenced, not copied; callers that mutate them afterwards
// own the consequences.
//
// Errors: ErrTooFewSides, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity: O(k).
func NewFeatures(lengths, angles []float64) (Features, error) {
	if len(lengths) != len(angles) {
		return Features{}, ErrDimensionMismatch
	}
	if len(lengths) < 3 {
		return Features{}, ErrTooFewSides
	}

	var i int
	for i = 0; i < len(lengths); i++ {
		if !isFinite(lengths[i]) || !isFinite(angles[i]) {
			return Features{}, ErrNaNInf
		}
	}

	return Features{Lengths: lengths, Angles: angles}, nil
}

// K reports the polygon order (number of sides) of the feature pair.
func (f Features) K() int { return len(f.Lengths) }

// Registration is one element of the dihedral group acting on a cyclic
// feature vector: a starting offset plus an optional traversal reversal.
//
// Shift must lie in [0, k) for the polygon order k; Reflect selects the
// backward reading direction. The zero value is the identity registration.
type Registration struct {
	Shift   int
	Reflect bool
}

// Identity returns the do-nothing registration (Shift 0, forward reading).
func Identity() Registration { return Registration{} }

// Validate checks that the registration is admissible for a k-gon.
//
// Errors: ErrTooFewSides if k < 3, ErrShiftOutOfRange otherwise.
//
// Complexity: O(1).
func (r Registration) Validate(k int) error {
	if k < 3 {
		return ErrTooFewSides
	}
	if r.Shift < 0 || r.Shift >= k {
		return ErrShiftOutOfRange
	}

	return nil
}

// Then composes two registrations: the receiver is applied first, next is
// applied to the result. The composite obeys
// Apply(v, r.Then(next, k)) == Apply(Apply(v, r), next) for every v of
// length k.
//
// Complexity: O(1).
func (r Registration) Then(next Registration, k int) Registration {
	var s int
	if r.Reflect {
		s = r.Shift - next.Shift
	} else {
		s = r.Shift + next.Shift
	}

	return Registration{Shift: modK(s, k), Reflect: r.Reflect != next.Reflect}
}

// Inverse returns the registration undoing the receiver. A reflecting
// registration is its own inverse under the backward-reading convention.
//
// Complexity: O(1).
func (r Registration) Inverse(k int) Registration {
	if r.Reflect {
		return r
	}

	return Registration{Shift: modK(-r.Shift, k)}
}

// modK reduces s into [0, k) for any sign of s.
func modK(s, k int) int {
	s %= k
	if s < 0 {
		s += k
	}

	return s
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
