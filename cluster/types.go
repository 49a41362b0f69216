package cluster

import "errors"

var (
	// ErrBadClusterCount is returned when Options.K < 1.
	ErrBadClusterCount = errors.New("cluster: K must be at least 1")

	// ErrBadIterations is returned when Options.Iter < 1.
	ErrBadIterations = errors.New("cluster: Iter must be at least 1")

	// ErrBadBurn is returned when the burn-in violates 0 ≤ Burn < Iter.
	ErrBadBurn = errors.New("cluster: Burn must satisfy 0 <= Burn < Iter")

	// ErrNegativeWeight is returned when WeightL or WeightA is negative.
	ErrNegativeWeight = errors.New("cluster: WeightL and WeightA must be non-negative")

	// ErrBadBandwidth is returned when Bandwidth is not a finite positive
	// number.
	ErrBadBandwidth = errors.New("cluster: Bandwidth must be a finite positive number")

	// ErrBadWorkers is returned when Options.Workers < 0.
	ErrBadWorkers = errors.New("cluster: Workers must be non-negative")
)

// Result carries the point estimates and the retained trace of one run.
//
// Cluster labels are 1-based: label c ∈ {1, …, K}. Shifts are 0-based
// offsets in [0, k); reflections are 0 (forward) or 1 (backward). All point
// estimates are posterior modes over the retained iterations, with ties
// broken toward the smallest value for reproducibility.
type Result struct {
	// Cluster is the per-shape MAP cluster label, length m, values 1..K.
	Cluster []int

	// ShiftMAP is the per-shape MAP registration shift, length m, values
	// in [0, k).
	ShiftMAP []int

	// ReflectMAP is the per-shape MAP reflection flag, length m, values
	// in {0, 1}.
	ReflectMAP []int

	// LabelTrace, ShiftTrace and ReflectTrace hold one row per retained
	// iteration (Kept rows of m entries each). ShiftTrace is the minimum
	// the mixing diagnostics need; the other two let callers recompute any
	// summary.
	LabelTrace   [][]int
	ShiftTrace   [][]int
	ReflectTrace [][]int

	// Kept is the number of retained iterations, Iter − Burn.
	Kept int
}
