package shape

// Apply returns the feature vector v read under registration reg: starting
// at index reg.Shift and moving forward, or backward when reg.Reflect is
// set. The input is never mutated; the result is freshly allocated.
//
// Errors: those of Registration.Validate.
//
// Complexity: O(k) time, O(k) space.
func Apply(v []float64, reg Registration) ([]float64, error) {
	if err := reg.Validate(len(v)); err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	ApplyInto(out, v, reg)

	return out, nil
}

// ApplyInto writes Apply(v, reg) into dst without allocating. It is the
// hot-path form used by the sampler's scoring loop; the caller guarantees
// len(dst) == len(v) and a registration already validated for len(v).
// dst and v must not alias.
//
// Complexity: O(k) time, O(1) extra space.
func ApplyInto(dst, v []float64, reg Registration) {
	var (
		k = len(v)
		i int
		j int
	)
	if reg.Reflect {
		for i = 0; i < k; i++ {
			j = reg.Shift - i
			if j < 0 {
				j += k
			}
			dst[i] = v[j]
		}

		return
	}
	for i = 0; i < k; i++ {
		j = reg.Shift + i
		if j >= k {
			j -= k
		}
		dst[i] = v[j]
	}
}
