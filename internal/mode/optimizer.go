// Package mode implements the constrained multi-objective evolutionary
// optimizer described by spec §4.6-§4.11: a unified population owned by
// Optimizer, two interchangeable variation strategies (DE/rand/1-style
// and NSGA-II-style SBX+polynomial-mutation), and Pareto-plus-constraint
// ranking with crowding-distance truncation for selection.
package mode

import (
	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/rng"
	"github.com/kestrelopt/modelde/internal/workerpool"
)

// LogFunc is invoked every LogPeriod generations with the current
// survivors' decision vectors and objective/constraint rows. Returning
// true requests termination, per spec §6.3.
type LogFunc func(iteration int, x, y [][]float64) bool

// Optimizer owns a MODE population and its RNG. It is not safe for
// concurrent use from more than one goroutine — only WorkerPool
// evaluations run in parallel; all state here is touched from a single
// driving goroutine, per spec §5.
type Optimizer struct {
	cfg   Config
	b     *bounds.Bounds
	r     *rng.Source
	fit   *fitness.MultiObjective
	logFn LogFunc

	survivors []Individual // len PopSize, descending domination order
	vX        [][]float64  // cached NSGA children, nil when stale/DE mode

	iterations int
	askIndex   int
	f, cr      float64

	pending *pendingQueue
}

// New creates an Optimizer, sanitizing cfg's defaults and initializing a
// uniformly sampled, evaluated starting population.
func New(cfg Config, fit *fitness.MultiObjective, logFn LogFunc) (*Optimizer, error) {
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := bounds.New(cfg.Lower, cfg.Upper)
	if err != nil {
		return nil, err
	}

	o := &Optimizer{
		cfg:     cfg,
		b:       b,
		r:       rng.New(cfg.Seed),
		fit:     fit,
		logFn:   logFn,
		f:       cfg.F,
		cr:      cfg.CR,
		pending: newPendingQueue(cfg.PopSize),
	}

	o.survivors = make([]Individual, cfg.PopSize)
	for i := range o.survivors {
		x := b.Sample(o.r)
		if cfg.Ints.Any() {
			cfg.Ints.RoundInts(x)
		}
		o.survivors[i] = Individual{X: x, Y: fit.Eval(x)}
	}
	o.survivors = popUpdate(o.survivors, cfg.Nobj, cfg.Ncon, cfg.PopSize)
	return o, nil
}

// Population returns a copy of the current survivors' decision vectors.
func (o *Optimizer) Population() [][]float64 {
	out := make([][]float64, len(o.survivors))
	for i, ind := range o.survivors {
		out[i] = append([]float64{}, ind.X...)
	}
	return out
}

// Values returns a copy of the current survivors' objective/constraint
// rows, aligned with Population().
func (o *Optimizer) Values() [][]float64 {
	out := make([][]float64, len(o.survivors))
	for i, ind := range o.survivors {
		out[i] = append([]float64{}, ind.Y...)
	}
	return out
}

// SwitchStrategy changes the variation operator and Pareto-bias mid-run,
// per spec §6.1's tellAll variant. The cached NSGA children are dropped so
// the next flush regenerates them under the new strategy.
func (o *Optimizer) SwitchStrategy(nsgaUpdate bool, paretoUpdate float64) {
	o.cfg.NSGAUpdate = nsgaUpdate
	o.cfg.ParetoUpdate = paretoUpdate
	o.vX = nil
}

func (o *Optimizer) nextX(p int) []float64 {
	if o.cfg.NSGAUpdate {
		if o.vX == nil {
			o.vX = nsgaChildren(o.r, o.survivors, o.b, o.cfg.Ints, o.cfg.DisC, o.cfg.ProC, o.cfg.DisM, o.cfg.ProM, o.cfg.MinMutate, o.cfg.MaxMutate)
		}
		return o.vX[p]
	}
	return deChild(o.r, o.survivors, p, o.f, o.cr, o.cfg.ParetoUpdate, o.b, o.cfg.Ints, o.cfg.MinMutate, o.cfg.MaxMutate)
}

func (o *Optimizer) maybeLog() {
	if o.logFn == nil || o.cfg.LogPeriod <= 0 {
		return
	}
	if o.iterations%o.cfg.LogPeriod == 0 {
		if o.logFn(o.iterations, collectX(o.survivors), collectY(o.survivors)) {
			o.fit.SetTerminate()
		}
	}
}

// Ask returns the next candidate decision vector and its population slot,
// per spec §4.10. Slot indices cycle 0..PopSize-1; a wrap increments the
// iteration counter, fires the log callback, and re-oscillates F/CR in DE
// mode.
func (o *Optimizer) Ask() (x []float64, slot int) {
	p := o.askIndex
	if p == 0 {
		o.iterations++
		o.maybeLog()
		if !o.cfg.NSGAUpdate {
			o.f, o.cr = oscillate(o.iterations, o.cfg.F, o.cfg.CR)
		}
	}
	x = o.nextX(p)
	o.askIndex = (p + 1) % o.cfg.PopSize
	return x, p
}

// dominatedByCurrent reports whether candidate y is weakly dominated in
// every row by the individual currently occupying slot — i.e. it improves
// nothing — which is the §4.10 dominance guard.
func dominatedByCurrent(current, candidate []float64) bool {
	for k := range current {
		if candidate[k] < current[k] {
			return false
		}
	}
	return true
}

// Tell reports the evaluated result of a prior Ask for the given slot, per
// spec §4.10. Dominated-on-all-rows candidates are discarded without
// entering the staging queue. Once the queue holds PopSize done entries,
// it flushes into the children half and runs pop_update.
func (o *Optimizer) Tell(x, y []float64, slot int) {
	if dominatedByCurrent(o.survivors[slot].Y, y) {
		return
	}
	o.pending.push(x, y)
	if o.pending.readyToFlush(o.cfg.PopSize) {
		o.flush()
	}
}

func (o *Optimizer) flush() {
	entries := o.pending.drain()
	children := make([]Individual, len(entries))
	for i, e := range entries {
		children[i] = Individual{X: e.x, Y: e.y}
	}

	pool := make([]Individual, 0, len(o.survivors)+len(children))
	pool = append(pool, o.survivors...)
	pool = append(pool, children...)
	pool = preSortSingleObjective(pool, o.cfg.Nobj, o.cfg.Ncon)
	o.survivors = popUpdate(pool, o.cfg.Nobj, o.cfg.Ncon, o.cfg.PopSize)
	o.vX = nil
}

// DoOptimize runs the synchronous generational loop of §4.11: every
// generation, one child per slot is generated and evaluated serially,
// then pop_update truncates back to PopSize survivors. Terminates when
// the evaluation budget is spent or the fitness object's terminate flag
// is observed.
func (o *Optimizer) DoOptimize() [][]float64 {
	for o.fit.Evaluations() < int64(o.cfg.MaxEvaluations) && !o.fit.Terminated() {
		children := make([]Individual, o.cfg.PopSize)
		for p := 0; p < o.cfg.PopSize; p++ {
			x, slot := o.Ask()
			y := o.fit.Eval(x)
			children[slot] = Individual{X: x, Y: y}
		}
		pool := make([]Individual, 0, 2*o.cfg.PopSize)
		pool = append(pool, o.survivors...)
		pool = append(pool, children...)
		pool = preSortSingleObjective(pool, o.cfg.Nobj, o.cfg.Ncon)
		o.survivors = popUpdate(pool, o.cfg.Nobj, o.cfg.Ncon, o.cfg.PopSize)
		o.vX = nil
		if o.fit.Terminated() {
			break
		}
	}
	return o.Population()
}

// DoOptimizeDelayedUpdate runs the asynchronous loop of §4.10, evaluating
// through a WorkerPool with up to Workers evaluations in flight at once.
func (o *Optimizer) DoOptimizeDelayedUpdate() [][]float64 {
	pool := workerpool.New(o.cfg.Workers, o.fit.Eval)
	defer pool.Close()

	inFlight := 0
	for {
		for inFlight < o.cfg.Workers && o.fit.Evaluations()+int64(inFlight) < int64(o.cfg.MaxEvaluations) && !o.fit.Terminated() {
			x, slot := o.Ask()
			pool.Submit(x, slot)
			inFlight++
		}
		if inFlight == 0 {
			break
		}
		res := pool.Result()
		inFlight--
		o.Tell(res.X, res.Y, res.Slot)
		if o.fit.Terminated() && inFlight == 0 {
			break
		}
	}
	return o.Population()
}
