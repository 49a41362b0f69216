package reconstruct_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyclust/reconstruct"
)

// extractFeatures derives the angle/length proportion pair from an explicit
// closed polygon — the inverse of Reconstruct, used to build round-trip
// fixtures.
func extractFeatures(t *testing.T, poly reconstruct.Polygon) (angles, lengths []float64) {
	t.Helper()
	k := len(poly)
	angles = make([]float64, k)
	lengths = make([]float64, k)

	var sumA, sumL float64
	for i := 0; i < k; i++ {
		prev := poly[(i-1+k)%k]
		cur := poly[i]
		next := poly[(i+1)%k]

		// Interior angle at cur between the edges cur→prev and cur→next.
		a1 := math.Atan2(prev.Y-cur.Y, prev.X-cur.X)
		a2 := math.Atan2(next.Y-cur.Y, next.X-cur.X)
		ang := math.Mod(a1-a2+4*math.Pi, 2*math.Pi)
		if ang > math.Pi {
			ang = 2*math.Pi - ang
		}
		angles[i] = ang
		lengths[i] = math.Hypot(next.X-cur.X, next.Y-cur.Y)
		sumA += ang
		sumL += lengths[i]
	}
	for i := 0; i < k; i++ {
		angles[i] /= sumA
		lengths[i] /= sumL
	}

	return angles, lengths
}

// congruent reports whether two polygons coincide vertex-by-vertex within
// tol, allowing a mirror across the x-axis (the intrinsic chirality
// ambiguity; Reconstruct anchors rotation and translation by starting at
// the origin with heading 0).
func congruent(a, b reconstruct.Polygon, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	direct, mirror := true, true
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > tol || math.Abs(a[i].Y-b[i].Y) > tol {
			direct = false
		}
		if math.Abs(a[i].X-b[i].X) > tol || math.Abs(a[i].Y+b[i].Y) > tol {
			mirror = false
		}
	}

	return direct || mirror
}

// TestReconstruct_UnitSquare: the all-equal feature pair of a square must
// yield exactly the square and its mirror.
func TestReconstruct_UnitSquare(t *testing.T) {
	angles := []float64{0.25, 0.25, 0.25, 0.25}
	lengths := []float64{0.25, 0.25, 0.25, 0.25}
	opts := reconstruct.DefaultOptions()
	opts.Scale = 4 // unit sides

	polys, err := reconstruct.Reconstruct(angles, lengths, opts)
	require.NoError(t, err)
	require.Len(t, polys, 2, "a square admits exactly its two chiralities")

	ccw := reconstruct.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	cw := reconstruct.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}}
	assert.True(t, congruent(polys[0], ccw, 1e-9), "positive-turn branch comes first")
	assert.True(t, congruent(polys[1], cw, 1e-9), "mirror branch follows")
}

// TestReconstruct_RoundTripTriangle: extracting features from a 3-4-5
// triangle and reconstructing at the original perimeter must recover a
// congruent triangle among the candidates.
func TestReconstruct_RoundTripTriangle(t *testing.T) {
	original := reconstruct.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	angles, lengths := extractFeatures(t, original)

	opts := reconstruct.DefaultOptions()
	opts.Scale = 12 // the original perimeter

	polys, err := reconstruct.Reconstruct(angles, lengths, opts)
	require.NoError(t, err)
	require.NotEmpty(t, polys)

	found := false
	for _, p := range polys {
		if congruent(p, original, 1e-6) {
			found = true

			break
		}
	}
	assert.True(t, found, "round trip must recover the original triangle up to chirality")

	for _, p := range polys {
		assert.Len(t, p, 3, "every candidate has exactly k vertices")
	}
}

// TestReconstruct_RoundTripIrregularQuad repeats the round trip on an
// asymmetric quadrilateral, where registration and chirality are
// non-trivial.
func TestReconstruct_RoundTripIrregularQuad(t *testing.T) {
	original := reconstruct.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 2}, {X: 1, Y: 3}}
	angles, lengths := extractFeatures(t, original)

	var perimeter float64
	for i := range original {
		next := original[(i+1)%len(original)]
		perimeter += math.Hypot(next.X-original[i].X, next.Y-original[i].Y)
	}

	opts := reconstruct.DefaultOptions()
	opts.Scale = perimeter
	opts.Tol = 1e-6 * perimeter

	polys, err := reconstruct.Reconstruct(angles, lengths, opts)
	require.NoError(t, err)

	found := false
	for _, p := range polys {
		if congruent(p, original, 1e-5) {
			found = true

			break
		}
	}
	assert.True(t, found, "round trip must recover the original quadrilateral up to chirality")
}

// TestReconstruct_NoClosure: an edge longer than all others combined can
// never close; the distinct failure sentinel must surface.
func TestReconstruct_NoClosure(t *testing.T) {
	angles := []float64{0.25, 0.25, 0.25, 0.25}
	lengths := []float64{0.70, 0.10, 0.10, 0.10}

	polys, err := reconstruct.Reconstruct(angles, lengths, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrNoClosure, "unclosable features must yield the distinct failure")
	assert.Nil(t, polys)
}

// TestReconstruct_InconsistentPair: right-angle interiors demand a
// rectangle, so sides without equal opposite pairs must report non-closure
// rather than a spurious approximate closure.
func TestReconstruct_InconsistentPair(t *testing.T) {
	angles := []float64{0.25, 0.25, 0.25, 0.25}
	lengths := []float64{0.30, 0.30, 0.30, 0.10}

	polys, err := reconstruct.Reconstruct(angles, lengths, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrNoClosure, "unrealizable angle/length pair must fail distinctly")
	assert.Nil(t, polys)
}

// TestReconstruct_Validation covers every malformed-input sentinel.
func TestReconstruct_Validation(t *testing.T) {
	good := []float64{0.25, 0.25, 0.25, 0.25}

	_, err := reconstruct.Reconstruct(good[:3], good, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrDimensionMismatch)

	_, err = reconstruct.Reconstruct([]float64{0.5, 0.5}, []float64{0.5, 0.5}, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrTooFewSides)

	_, err = reconstruct.Reconstruct([]float64{0.5, 0.5, 0}, []float64{0.3, 0.3, 0.4}, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrNonPositiveFeature)

	_, err = reconstruct.Reconstruct([]float64{0.5, 0.25, math.NaN(), 0.25}, good, reconstruct.DefaultOptions())
	assert.ErrorIs(t, err, reconstruct.ErrNaNInf)

	opts := reconstruct.DefaultOptions()
	opts.Tol = 0
	_, err = reconstruct.Reconstruct(good, good, opts)
	assert.ErrorIs(t, err, reconstruct.ErrBadTol)

	opts = reconstruct.DefaultOptions()
	opts.Scale = -1
	_, err = reconstruct.Reconstruct(good, good, opts)
	assert.ErrorIs(t, err, reconstruct.ErrBadScale)

	opts = reconstruct.DefaultOptions()
	opts.MaxResults = -1
	_, err = reconstruct.Reconstruct(good, good, opts)
	assert.ErrorIs(t, err, reconstruct.ErrBadMaxResults)
}

// TestReconstruct_MaxResults caps the candidate count without erroring.
func TestReconstruct_MaxResults(t *testing.T) {
	angles := []float64{0.25, 0.25, 0.25, 0.25}
	lengths := []float64{0.25, 0.25, 0.25, 0.25}
	opts := reconstruct.DefaultOptions()
	opts.MaxResults = 1

	polys, err := reconstruct.Reconstruct(angles, lengths, opts)
	require.NoError(t, err)
	assert.Len(t, polys, 1, "MaxResults must cap the result set")
}

// TestReconstruct_Deterministic: identical inputs enumerate identical
// candidates in identical order.
func TestReconstruct_Deterministic(t *testing.T) {
	original := reconstruct.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 2}, {X: 1, Y: 3}}
	angles, lengths := extractFeatures(t, original)

	first, err := reconstruct.Reconstruct(angles, lengths, reconstruct.DefaultOptions())
	require.NoError(t, err)
	second, err := reconstruct.Reconstruct(angles, lengths, reconstruct.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
