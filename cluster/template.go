package cluster

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/polyclust/register"
	"github.com/katalvlaran/polyclust/shape"
)

// templateState maintains the K canonical feature pairs and the scratch
// buffers their mean updates need. One instance belongs to one run; it is
// only touched between sweeps, never concurrently.
type templateState struct {
	k         int
	templates []register.Template

	accL    []float64 // running sum of registered length vectors
	accA    []float64 // running sum of registered angle vectors
	scratch []float64 // one registered vector
}

// newTemplateState allocates K templates, all initialized to the global
// column mean of the raw dataset. The shared start point is neutral: the
// first sweep's label draws are uniform and the templates separate as soon
// as members differ.
//
// Complexity: O(m·k + K·k).
func newTemplateState(ds *shape.Dataset, K int) *templateState {
	var (
		k  = ds.K()
		m  = ds.Len()
		ts = &templateState{
			k:         k,
			templates: make([]register.Template, K),
			accL:      make([]float64, k),
			accA:      make([]float64, k),
			scratch:   make([]float64, k),
		}

		meanL = make([]float64, k)
		meanA = make([]float64, k)
		i     int
		c     int
	)
	for i = 0; i < m; i++ {
		floats.Add(meanL, ds.Row(i).Lengths)
		floats.Add(meanA, ds.Row(i).Angles)
	}
	floats.Scale(1/float64(m), meanL)
	floats.Scale(1/float64(m), meanA)

	for c = 0; c < K; c++ {
		ts.templates[c] = register.Template{L: make([]float64, k), A: make([]float64, k)}
		copy(ts.templates[c].L, meanL)
		copy(ts.templates[c].A, meanA)
	}

	return ts
}

// update recomputes cluster c's template as the elementwise mean of its
// members' registered feature vectors. A memberless cluster keeps its
// previous template unchanged, so emptiness can never abort the chain.
//
// Complexity: O(m_c·k) for m_c members.
func (ts *templateState) update(c int, ds *shape.Dataset, labels []int, regs []shape.Registration) {
	var (
		count int
		i     int
		row   shape.Features
	)
	zero(ts.accL)
	zero(ts.accA)

	for i = 0; i < ds.Len(); i++ {
		if labels[i] != c {
			continue
		}
		row = ds.Row(i)
		shape.ApplyInto(ts.scratch, row.Lengths, regs[i])
		floats.Add(ts.accL, ts.scratch)
		shape.ApplyInto(ts.scratch, row.Angles, regs[i])
		floats.Add(ts.accA, ts.scratch)
		count++
	}
	if count == 0 {
		return
	}

	copy(ts.templates[c].L, ts.accL)
	copy(ts.templates[c].A, ts.accA)
	floats.Scale(1/float64(count), ts.templates[c].L)
	floats.Scale(1/float64(count), ts.templates[c].A)
}

// zero clears a scratch vector in place.
func zero(v []float64) {
	var i int
	for i = range v {
		v[i] = 0
	}
}
