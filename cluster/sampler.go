package cluster

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyclust/register"
	"github.com/katalvlaran/polyclust/shape"
)

// engine owns the full mutable state of one sampling run. A dedicated
// struct (instead of closures over Cluster locals) keeps the hot-path state
// explicit and run invocations fully independent, so parameter sweeps can
// run concurrently.
type engine struct {
	opts Options
	seed int64

	ds *shape.Dataset
	m  int // shapes
	k  int // sides
	kc int // clusters

	labels []int                // current 0-based assignment
	regs   []shape.Registration // current per-shape registration
	ts     *templateState

	// Serial-sweep scratch; the parallel sweep allocates per worker.
	model *register.Model
	logw  []float64

	labelTrace   [][]int
	shiftTrace   [][]int
	reflectTrace [][]int
}

// Cluster runs the registration-aware Gibbs sampler over the paired m×k
// proportion matrices L (side lengths) and A (interior angles).
//
// Contract:
//   - L and A share row count m ≥ 1 and rectangular column count k ≥ 3,
//     all entries finite (validated via shape.NewDataset).
//   - opts passes Options.validate; all violations surface before any
//     sampling starts.
//
// The returned Result holds 1-based MAP cluster labels, MAP registrations
// and the retained discrete trace; see the package documentation for the
// iteration semantics.
//
// Errors: cluster sentinels (ErrBadClusterCount, ErrBadIterations,
// ErrBadBurn, ErrNegativeWeight, ErrBadBandwidth, ErrBadWorkers) and shape
// dataset sentinels. Never errors mid-run.
//
// Complexity: O(Iter·m·K·k²) worst case; memory O(m·k + K·k + (Iter−Burn)·m).
func Cluster(L, A [][]float64, opts Options) (Result, error) {
	// Stage 1: options-only sanity.
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2: dataset shape and finiteness.
	ds, err := shape.NewDataset(L, A)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: engine assembly.
	var e engine
	e.opts = opts
	e.seed = normalizeSeed(opts.Seed)
	e.ds = ds
	e.m = ds.Len()
	e.k = ds.K()
	e.kc = opts.K
	e.labels = make([]int, e.m)
	e.regs = make([]shape.Registration, e.m)
	e.ts = newTemplateState(ds, e.kc)
	e.model, err = register.NewModel(e.k, opts.WeightL, opts.WeightA, opts.Bandwidth)
	if err != nil {
		return Result{}, err
	}
	e.logw = make([]float64, scratchLen(e.kc, e.k))

	kept := opts.Iter - opts.Burn
	e.labelTrace = make([][]int, 0, kept)
	e.shiftTrace = make([][]int, 0, kept)
	e.reflectTrace = make([][]int, 0, kept)

	// Stage 4: the chain. Iteration i+1 reads only iteration i's templates
	// during the sweep, so the sweep itself may fan out across shapes.
	var it int
	for it = 0; it < opts.Iter; it++ {
		if err = e.sweep(it); err != nil {
			return Result{}, err
		}
		e.updateTemplates()
		if it >= opts.Burn {
			e.record()
		}
	}

	return e.summarize(), nil
}

// scratchLen sizes the categorical-draw buffer: it must hold K cluster
// scores, k shift scores or 2 reflection scores.
func scratchLen(K, k int) int {
	if K > k {
		return K
	}

	return k
}

// sweep resamples every shape's label and registration once, reading only
// the previous iteration's templates.
func (e *engine) sweep(it int) error {
	if e.opts.Workers > 1 && e.m > 1 {
		return e.sweepParallel(it)
	}

	var i int
	for i = 0; i < e.m; i++ {
		e.resampleShape(it, i, e.model, e.logw)
	}

	return nil
}

// sweepParallel fans the sweep out over contiguous shape chunks. Each
// worker owns a private scoring model and buffer; per-shape RNG streams
// keep the draws identical to the serial sweep.
func (e *engine) sweepParallel(it int) error {
	var (
		g       errgroup.Group
		workers = e.opts.Workers
		w       int
	)
	if workers > e.m {
		workers = e.m
	}

	for w = 0; w < workers; w++ {
		lo := w * e.m / workers
		hi := (w + 1) * e.m / workers
		g.Go(func() error {
			model, err := register.NewModel(e.k, e.opts.WeightL, e.opts.WeightA, e.opts.Bandwidth)
			if err != nil {
				return err
			}
			logw := make([]float64, scratchLen(e.kc, e.k))

			var i int
			for i = lo; i < hi; i++ {
				e.resampleShape(it, i, model, logw)
			}

			return nil
		})
	}

	return g.Wait()
}

// resampleShape draws shape i's new label, then its shift and reflection
// where estimated. Only index i of labels/regs is written, so concurrent
// calls for distinct shapes never race.
func (e *engine) resampleShape(it, i int, model *register.Model, logw []float64) {
	var (
		rng = streamRNG(e.seed, it, i, e.m)
		row = e.ds.Row(i)
		c   int
		s   int
	)

	// Label draw: categorical over K, each cluster entering with its best
	// admissible registration score.
	for c = 0; c < e.kc; c++ {
		_, logw[c] = model.Best(row, e.ts.templates[c], e.opts.EstimateShift, e.opts.EstimateReflect)
	}
	label := drawCategorical(logw[:e.kc], rng)
	tmpl := e.ts.templates[label]

	reg := e.regs[i]
	if !e.opts.EstimateShift {
		reg.Shift = 0
	}
	if !e.opts.EstimateReflect {
		reg.Reflect = false
	}

	// Shift draw over [0, k) given the new label and current reflection.
	if e.opts.EstimateShift {
		for s = 0; s < e.k; s++ {
			logw[s] = model.Score(row, shape.Registration{Shift: s, Reflect: reg.Reflect}, tmpl)
		}
		reg.Shift = drawCategorical(logw[:e.k], rng)
	}

	// Reflection draw over {forward, backward} given the new shift.
	if e.opts.EstimateReflect {
		logw[0] = model.Score(row, shape.Registration{Shift: reg.Shift}, tmpl)
		logw[1] = model.Score(row, shape.Registration{Shift: reg.Shift, Reflect: true}, tmpl)
		reg.Reflect = drawCategorical(logw[:2], rng) == 1
	}

	e.labels[i] = label
	e.regs[i] = reg
}

// updateTemplates recomputes every cluster's template from the sweep that
// just finished. Runs strictly after the sweep, per the chain's serial
// dependency.
func (e *engine) updateTemplates() {
	var c int
	for c = 0; c < e.kc; c++ {
		e.ts.update(c, e.ds, e.labels, e.regs)
	}
}

// record appends the current discrete state to the retained trace.
func (e *engine) record() {
	var (
		labels   = make([]int, e.m)
		shifts   = make([]int, e.m)
		reflects = make([]int, e.m)
		i        int
	)
	copy(labels, e.labels)
	for i = 0; i < e.m; i++ {
		shifts[i] = e.regs[i].Shift
		if e.regs[i].Reflect {
			reflects[i] = 1
		}
	}
	e.labelTrace = append(e.labelTrace, labels)
	e.shiftTrace = append(e.shiftTrace, shifts)
	e.reflectTrace = append(e.reflectTrace, reflects)
}
