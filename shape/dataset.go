package shape

// Dataset is an ordered collection of m shapes observed through two m×k
// proportion matrices. Row i of both matrices describes shape i; row order
// carries no clustering meaning but fixes output alignment.
type Dataset struct {
	rows []Features
	k    int
}

// NewDataset validates the paired feature matrices and wraps them.
//
// Contract (all checked, fail-fast):
//   - L and A have the same, positive row count m,
//   - every row of L and A has the same length k ≥ 3 (rectangular),
//   - every entry is finite.
//
// Rows are referenced, not copied.
//
// Errors: ErrDimensionMismatch, ErrRaggedMatrix, ErrTooFewSides, ErrNaNInf.
//
// Complexity: O(m·k).
func NewDataset(L, A [][]float64) (*Dataset, error) {
	if len(L) != len(A) || len(L) == 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		m  = len(L)
		k  = len(L[0])
		ds = &Dataset{rows: make([]Features, m), k: k}

		i   int
		f   Features
		err error
	)
	if k < 3 {
		return nil, ErrTooFewSides
	}
	for i = 0; i < m; i++ {
		if len(L[i]) != k || len(A[i]) != k {
			return nil, ErrRaggedMatrix
		}
		f, err = NewFeatures(L[i], A[i])
		if err != nil {
			return nil, err
		}
		ds.rows[i] = f
	}

	return ds, nil
}

// Len reports the number of shapes m.
func (d *Dataset) Len() int { return len(d.rows) }

// K reports the common polygon order k.
func (d *Dataset) K() int { return d.k }

// Row returns the feature pair of shape i. The index contract is the
// caller's; out-of-range access panics as a programmer error.
func (d *Dataset) Row(i int) Features { return d.rows[i] }
