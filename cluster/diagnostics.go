package cluster

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrBadTrace is returned when a trace row and the reference vector
// disagree in shape count.
var ErrBadTrace = errors.New("cluster: trace and reference disagree in shape count")

// ShiftAgreement is the mixing diagnostic the trace exists for: per
// retained iteration, the fraction of shapes whose sampled shift equals the
// reference shift (typically the known simulation registration, or the
// run's own ShiftMAP). Plotting the series against the iteration index
// shows how often and how quickly the chain visits the reference
// registration.
//
// Errors: ErrBadTrace on a shape-count mismatch; an empty trace yields an
// empty series.
//
// Complexity: O(kept·m).
func ShiftAgreement(shiftTrace [][]int, ref []int) ([]float64, error) {
	var (
		out       = make([]float64, len(shiftTrace))
		indicator = make([]float64, len(ref))
		t         int
		i         int
	)
	for t = 0; t < len(shiftTrace); t++ {
		if len(shiftTrace[t]) != len(ref) {
			return nil, ErrBadTrace
		}
		for i = 0; i < len(ref); i++ {
			indicator[i] = 0
			if shiftTrace[t][i] == ref[i] {
				indicator[i] = 1
			}
		}
		out[t] = stat.Mean(indicator, nil)
	}

	return out, nil
}
