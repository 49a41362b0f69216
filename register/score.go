package register

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/polyclust/shape"
)

// Model evaluates registration scores for shapes of a fixed polygon order k
// with fixed channel weights and bandwidth. It owns scratch buffers for the
// registered vectors, so one Model must not be shared across goroutines.
type Model struct {
	wL        float64
	wA        float64
	invTwoVar float64 // 1 / (2·bandwidth²), precomputed
	k         int

	scratchL []float64
	scratchA []float64
}

// NewModel validates the knobs and allocates a scoring model for k-gons.
//
// Errors: shape.ErrTooFewSides, ErrNegativeWeight, ErrBadBandwidth.
//
// Complexity: O(k).
func NewModel(k int, wL, wA, bandwidth float64) (*Model, error) {
	if k < 3 {
		return nil, shape.ErrTooFewSides
	}
	if err := validateKnobs(wL, wA, bandwidth); err != nil {
		return nil, err
	}

	return &Model{
		wL:        wL,
		wA:        wA,
		invTwoVar: 1 / (2 * bandwidth * bandwidth),
		k:         k,
		scratchL:  make([]float64, k),
		scratchA:  make([]float64, k),
	}, nil
}

// K reports the polygon order the model was built for.
func (m *Model) K() int { return m.k }

// Score returns the Gaussian log-score of f under reg against tmpl.
// The registration and template shapes are the caller's contract on the hot
// path; Registration.Validate applies when entering via the package-level
// Score.
//
// Complexity: O(k), no allocations.
func (m *Model) Score(f shape.Features, reg shape.Registration, tmpl Template) float64 {
	shape.ApplyInto(m.scratchL, f.Lengths, reg)
	shape.ApplyInto(m.scratchA, f.Angles, reg)

	var dL, dA float64
	dL = floats.Distance(m.scratchL, tmpl.L, 2)
	dA = floats.Distance(m.scratchA, tmpl.A, 2)

	return -(m.wL*dL*dL + m.wA*dA*dA) * m.invTwoVar
}

// Best returns the highest-scoring admissible registration of f against
// tmpl and its score. estimateS=false restricts the search to shift 0;
// estimateR=false restricts it to forward reading. Exact ties resolve to
// the lowest shift, then to the identity reflection, by enumeration order.
//
// Complexity: O(k²) with both axes free (2k candidates, O(k) score each).
func (m *Model) Best(f shape.Features, tmpl Template, estimateS, estimateR bool) (shape.Registration, float64) {
	var (
		shifts = 1
		best   shape.Registration
		bestSc float64
		sc     float64
		s      int
		reg    shape.Registration
		first  = true
	)
	if estimateS {
		shifts = m.k
	}

	for s = 0; s < shifts; s++ {
		reg = shape.Registration{Shift: s}
		sc = m.Score(f, reg, tmpl)
		if first || sc > bestSc {
			best, bestSc, first = reg, sc, false
		}
		if !estimateR {
			continue
		}
		reg.Reflect = true
		sc = m.Score(f, reg, tmpl)
		if sc > bestSc {
			best, bestSc = reg, sc
		}
	}

	return best, bestSc
}

// Score is the convenience package-level form: it validates every input,
// builds a throwaway model and evaluates a single registration.
//
// Errors: ErrTemplateMismatch, ErrNegativeWeight, ErrBadBandwidth, plus
// Registration.Validate sentinels.
//
// Complexity: O(k).
func Score(f shape.Features, reg shape.Registration, tmpl Template, wL, wA, bandwidth float64) (float64, error) {
	if tmpl.K() != f.K() || len(tmpl.L) != len(tmpl.A) {
		return 0, ErrTemplateMismatch
	}
	if err := reg.Validate(f.K()); err != nil {
		return 0, err
	}
	m, err := NewModel(f.K(), wL, wA, bandwidth)
	if err != nil {
		return 0, err
	}

	return round1e9(m.Score(f, reg, tmpl)), nil
}

// ScoreAll evaluates every registration of the dihedral group in canonical
// order: shift ascending, forward before backward within a shift. The
// result has length 2k and index 2·s+r for reflection flag r∈{0,1}.
//
// Errors: as Score.
//
// Complexity: O(k²) time, O(k) space beyond the result.
func ScoreAll(f shape.Features, tmpl Template, wL, wA, bandwidth float64) ([]float64, error) {
	if tmpl.K() != f.K() || len(tmpl.L) != len(tmpl.A) {
		return nil, ErrTemplateMismatch
	}
	m, err := NewModel(f.K(), wL, wA, bandwidth)
	if err != nil {
		return nil, err
	}

	var (
		out = make([]float64, 2*m.k)
		s   int
	)
	for s = 0; s < m.k; s++ {
		out[2*s] = round1e9(m.Score(f, shape.Registration{Shift: s}, tmpl))
		out[2*s+1] = round1e9(m.Score(f, shape.Registration{Shift: s, Reflect: true}, tmpl))
	}

	return out, nil
}
