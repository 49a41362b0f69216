package register_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyclust/register"
	"github.com/katalvlaran/polyclust/shape"
)

func quadFeatures(t *testing.T, lengths, angles []float64) shape.Features {
	t.Helper()
	f, err := shape.NewFeatures(lengths, angles)
	require.NoError(t, err)

	return f
}

// TestScore_PerfectMatchIsZero verifies that a shape scored against its own
// features under the identity registration yields the maximal score 0.
func TestScore_PerfectMatchIsZero(t *testing.T) {
	f := quadFeatures(t, []float64{0.4, 0.1, 0.4, 0.1}, []float64{0.25, 0.25, 0.25, 0.25})
	tmpl, err := register.NewTemplate(f.Lengths, f.Angles)
	require.NoError(t, err)

	sc, err := register.Score(f, shape.Identity(), tmpl, 1, 1, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sc, 1e-12, "identical registered shape must score 0")

	shifted, err := register.Score(f, shape.Registration{Shift: 1}, tmpl, 1, 1, 0.05)
	require.NoError(t, err)
	assert.Less(t, shifted, 0.0, "misregistered shape must score below 0")
}

// TestScore_RegistrationRecovered: shifting the observation and scoring all
// registrations must peak exactly at the compensating registration.
func TestScore_RegistrationRecovered(t *testing.T) {
	base := quadFeatures(t, []float64{0.4, 0.3, 0.2, 0.1}, []float64{0.1, 0.2, 0.3, 0.4})
	tmpl, err := register.NewTemplate(base.Lengths, base.Angles)
	require.NoError(t, err)

	// Observe the same shape read from offset 3.
	obs := shape.Registration{Shift: 3}
	l, err := shape.Apply(base.Lengths, obs)
	require.NoError(t, err)
	a, err := shape.Apply(base.Angles, obs)
	require.NoError(t, err)
	f := quadFeatures(t, l, a)

	m, err := register.NewModel(4, 1, 1, 0.05)
	require.NoError(t, err)
	best, sc := m.Best(f, tmpl, true, true)
	assert.Equal(t, obs.Inverse(4), best, "best registration must undo the observation offset")
	assert.InDelta(t, 0.0, sc, 1e-12, "undoing the offset must restore a perfect score")
}

// TestBest_TieBreak: a constant template over a constant shape ties every
// registration; the deterministic pick must be shift 0, forward.
func TestBest_TieBreak(t *testing.T) {
	f := quadFeatures(t, []float64{0.25, 0.25, 0.25, 0.25}, []float64{0.25, 0.25, 0.25, 0.25})
	tmpl, err := register.NewTemplate(f.Lengths, f.Angles)
	require.NoError(t, err)

	m, err := register.NewModel(4, 1, 1, 0.05)
	require.NoError(t, err)
	best, _ := m.Best(f, tmpl, true, true)
	assert.Equal(t, shape.Identity(), best, "exact ties must resolve to the identity registration")
}

// TestScore_KnobValidation covers the rejection paths of the shared knobs.
func TestScore_KnobValidation(t *testing.T) {
	f := quadFeatures(t, []float64{0.4, 0.1, 0.4, 0.1}, []float64{0.25, 0.25, 0.25, 0.25})
	tmpl, err := register.NewTemplate(f.Lengths, f.Angles)
	require.NoError(t, err)

	_, err = register.Score(f, shape.Identity(), tmpl, -1, 1, 0.05)
	assert.ErrorIs(t, err, register.ErrNegativeWeight, "negative wL must error")

	_, err = register.Score(f, shape.Identity(), tmpl, 1, -1, 0.05)
	assert.ErrorIs(t, err, register.ErrNegativeWeight, "negative wA must error")

	_, err = register.Score(f, shape.Identity(), tmpl, 1, 1, 0)
	assert.ErrorIs(t, err, register.ErrBadBandwidth, "zero bandwidth must error")

	short, err := register.NewTemplate([]float64{0.5, 0.5, 0}, []float64{0.5, 0.5, 0})
	require.NoError(t, err)
	_, err = register.Score(f, shape.Identity(), short, 1, 1, 0.05)
	assert.ErrorIs(t, err, register.ErrTemplateMismatch, "order mismatch must error")
}

// TestScoreAll_CanonicalOrder checks length, ordering and the argmax index
// of the full dihedral score vector.
func TestScoreAll_CanonicalOrder(t *testing.T) {
	f := quadFeatures(t, []float64{0.4, 0.3, 0.2, 0.1}, []float64{0.1, 0.2, 0.3, 0.4})
	tmpl, err := register.NewTemplate(f.Lengths, f.Angles)
	require.NoError(t, err)

	all, err := register.ScoreAll(f, tmpl, 1, 1, 0.05)
	require.NoError(t, err)
	require.Len(t, all, 8, "a 4-gon has 8 admissible registrations")
	assert.InDelta(t, 0.0, all[0], 1e-12, "identity occupies index 0 and scores 0")
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i], 0.0, "registration %d must score below the identity", i)
	}
}
