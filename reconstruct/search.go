package reconstruct

import "math"

// walkEngine holds the precomputed geometry and mutable state of one
// reconstruction search. A dedicated engine struct (instead of closures)
// keeps the hot-path state explicit and the recursion allocation-free.
type walkEngine struct {
	k          int
	steps      []float64 // edge lengths, scaled to the target perimeter
	turns      []float64 // unsigned turning angle at each vertex (may be negative for reflex interiors)
	remaining  []float64 // remaining[d] = Σ steps[d:], reachability bound
	turnSlack  []float64 // turnSlack[d] = Σ |turns[v]| over yet-undecided vertices after d decisions
	tol        float64
	angleTol   float64
	maxResults int

	vertices []Point // current partial walk, vertices[0] = origin
	out      []Polygon
}

// Reconstruct inverts one shape's registered angle and length proportions
// into every closed k-gon consistent with them, up to the perimeter fixed
// by opts.Scale. See the package documentation for the search semantics.
//
// Contract:
//   - len(angles) == len(lengths) == k ≥ 3, all entries finite and > 0;
//     the vectors are treated as proportions and normalized to sum 1.
//   - opts passes validation.
//
// Returns at least one candidate on success. ErrNoClosure reports that the
// feature pair describes no closed polygon within tolerance — a per-shape
// outcome callers can record without aborting a batch.
//
// Complexity: O(2^k) worst case; branch-and-bound pruning makes realistic
// feature vectors far cheaper. Memory: O(k) beyond the results.
func Reconstruct(angles, lengths []float64, opts Options) ([]Polygon, error) {
	// Stage 1: options and feature validation.
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := validateFeatures(angles, lengths); err != nil {
		return nil, err
	}

	// Stage 2: geometry precomputation.
	var (
		k = len(angles)
		e = walkEngine{
			k:          k,
			steps:      make([]float64, k),
			turns:      make([]float64, k),
			remaining:  make([]float64, k+1),
			turnSlack:  make([]float64, k+1),
			tol:        opts.Tol,
			angleTol:   opts.AngleTol,
			maxResults: opts.MaxResults,
			vertices:   make([]Point, k),
		}

		sumA float64
		sumL float64
		i    int
	)
	for i = 0; i < k; i++ {
		sumA += angles[i]
		sumL += lengths[i]
	}
	for i = 0; i < k; i++ {
		// Interior angle θᵢ of a k-gon whose angles sum to (k−2)π, then the
		// unsigned turn τᵢ = π − θᵢ.
		e.turns[i] = math.Pi - angles[i]/sumA*float64(k-2)*math.Pi
		e.steps[i] = lengths[i] / sumL * opts.Scale
	}

	// remaining[d] = perimeter not yet laid after d edges.
	for i = k - 1; i >= 0; i-- {
		e.remaining[i] = e.remaining[i+1] + e.steps[i]
	}
	// turnSlack[d] = |τ| mass still undecided once the signs of vertices
	// 1..d are fixed: vertices d+1..k−1 plus vertex 0, whose turn is
	// decided last (it closes the heading but moves no vertex).
	e.turnSlack[k-1] = math.Abs(e.turns[0])
	for i = k - 2; i >= 0; i-- {
		e.turnSlack[i] = e.turnSlack[i+1] + math.Abs(e.turns[i+1])
	}

	// Stage 3: the sign search.
	e.dfs(0, Point{}, 0, 0)

	if len(e.out) == 0 {
		return nil, ErrNoClosure
	}

	return e.out, nil
}

// dfs lays edge j from pos along heading, then branches on the sign of the
// turn at the following vertex. turnSum accumulates the signed turning so
// far. Returns true when the result cap has been reached and the search
// should unwind.
func (e *walkEngine) dfs(j int, pos Point, heading, turnSum float64) bool {
	end := Point{
		X: pos.X + e.steps[j]*math.Cos(heading),
		Y: pos.Y + e.steps[j]*math.Sin(heading),
	}
	dist := math.Hypot(end.X, end.Y)

	if j == e.k-1 {
		// All edges laid; accept on closure plus a feasible final turn at
		// vertex 0 (which moves nothing but must complete ±2π turning).
		if dist > e.tol {
			return false
		}
		if e.turningCloses(turnSum) {
			e.emit()

			return e.maxResults > 0 && len(e.out) >= e.maxResults
		}

		return false
	}

	// Reachability prune: the walk can never get back to the origin.
	if dist > e.remaining[j+1]+e.tol {
		return false
	}
	e.vertices[j+1] = end

	var (
		v    = j + 1 // vertex whose turn sign is decided next
		tau  = e.turns[v]
		sign float64
		t    float64
	)
	for _, sign = range []float64{1, -1} {
		if sign < 0 && tau == 0 {
			// A zero turn branches identically; skip the duplicate.
			continue
		}
		t = turnSum + sign*tau
		// Turning feasibility: some completion must still reach ±2π.
		if math.Min(math.Abs(t-2*math.Pi), math.Abs(t+2*math.Pi)) > e.turnSlack[v]+e.angleTol {
			continue
		}
		if e.dfs(j+1, end, heading+sign*tau, t) {
			return true
		}
	}

	return false
}

// turningCloses reports whether some sign of the final turn at vertex 0
// completes a total turning of ±2π within tolerance.
func (e *walkEngine) turningCloses(turnSum float64) bool {
	var (
		tau  = e.turns[0]
		sign float64
		t    float64
	)
	for _, sign = range []float64{1, -1} {
		t = turnSum + sign*tau
		if math.Abs(t-2*math.Pi) <= e.angleTol || math.Abs(t+2*math.Pi) <= e.angleTol {
			return true
		}
		if tau == 0 {
			break
		}
	}

	return false
}

// emit copies the current walk into the result set.
func (e *walkEngine) emit() {
	poly := make(Polygon, e.k)
	copy(poly, e.vertices)
	e.out = append(e.out, poly)
}
