package cluster

// summarize derives the point estimates from the retained trace and
// packages the Result. Labels are shifted to the 1-based convention on the
// way out.
func (e *engine) summarize() Result {
	var (
		res = Result{
			Cluster:      posteriorMode(e.labelTrace, e.m, e.kc),
			ShiftMAP:     posteriorMode(e.shiftTrace, e.m, e.k),
			ReflectMAP:   posteriorMode(e.reflectTrace, e.m, 2),
			LabelTrace:   e.labelTrace,
			ShiftTrace:   e.shiftTrace,
			ReflectTrace: e.reflectTrace,
			Kept:         len(e.labelTrace),
		}
		i int
	)
	for i = 0; i < e.m; i++ {
		res.Cluster[i]++
	}

	return res
}

// posteriorMode computes, per shape, the most frequent value across the
// retained iterations. Ties break toward the smallest value: the counting
// scan replaces the argmax only on a strictly greater count, and values are
// scanned in ascending order.
//
// Complexity: O(kept·m + m·domain).
func posteriorMode(trace [][]int, m, domain int) []int {
	var (
		out    = make([]int, m)
		counts = make([]int, domain)
		i      int
		t      int
		v      int
		best   int
	)
	for i = 0; i < m; i++ {
		for v = 0; v < domain; v++ {
			counts[v] = 0
		}
		for t = 0; t < len(trace); t++ {
			counts[trace[t][i]]++
		}
		best = 0
		for v = 1; v < domain; v++ {
			if counts[v] > counts[best] {
				best = v
			}
		}
		out[i] = best
	}

	return out
}
