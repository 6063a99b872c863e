// Package lde implements the single-objective constrained DE/best/1
// optimizer of spec §4.5: temporal-locality exploitation of successful
// moves and age-based reinitialization of stagnant slots, layered over a
// per-coordinate normal sampler whose scale contracts around improving
// solutions.
package lde

import (
	"math"

	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/rng"
)

// Result is the final outcome of a Run, the Go-shaped analogue of §6.2's
// res[dim+4] output buffer.
type Result struct {
	BestX       []float64
	BestY       float64
	Evaluations int64
	Iterations  int
	Stopped     string // "evaluations", "terminated", or "stopfitness"
}

// Optimizer owns one LDE population and its RNG. Not safe for concurrent
// use; LDE has no asynchronous ask/tell entry point in §6.2, only the
// synchronous Run below.
type Optimizer struct {
	cfg   Config
	b     *bounds.Bounds // nil when Config carries no bounds
	r     *rng.Source
	sigma *sigmaState

	x       [][]float64
	y       []float64
	popIter []int

	bestI int
	bestX []float64
	bestY float64

	f, cr      float64
	iterations int
}

// New creates an Optimizer, sanitizing cfg's defaults and seeding every
// slot at cfg.Init with Y=+Inf, per §4.5 "Initialization".
func New(cfg Config) (*Optimizer, error) {
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var b *bounds.Bounds
	if len(cfg.Lower) != 0 {
		var err error
		b, err = bounds.New(cfg.Lower, cfg.Upper)
		if err != nil {
			return nil, err
		}
	}

	o := &Optimizer{
		cfg:   cfg,
		b:     b,
		r:     rng.New(cfg.Seed),
		sigma: newSigmaState(cfg.Init, cfg.InputSigma, cfg.Lower, cfg.Upper),
		f:     cfg.F,
		cr:    cfg.CR,
		bestY: math.Inf(1),
		bestX: append([]float64{}, cfg.Init...),
	}

	o.x = make([][]float64, cfg.PopSize)
	o.y = make([]float64, cfg.PopSize)
	o.popIter = make([]int, cfg.PopSize)
	for i := range o.x {
		o.x[i] = append([]float64{}, cfg.Init...)
		o.y[i] = math.Inf(1)
	}
	return o, nil
}

// oscillate implements the shared §4.5/§4.6.2 F/CR schedule.
func oscillate(iteration int, f0, cr0 float64) (f, cr float64) {
	if iteration%2 == 0 {
		return f0, cr0
	}
	return 0.5 * f0, 0.5 * cr0
}

// integerMutate is LDE's copy of the shared §4.8 mutation pass: MODE's
// resample draws uniformly within bounds, LDE's draws from the
// sigma-normal mixture, so each optimizer keeps its own small copy rather
// than share a resample-agnostic abstraction across packages.
func integerMutate(x []float64, mask bounds.IntMask, minMutate, maxMutate float64, r *rng.Source, resample func(i int) float64) {
	nInts := mask.Count()
	if nInts == 0 {
		return
	}
	m := minMutate + r.Float64()*(maxMutate-minMutate)
	rate := m / float64(nInts)
	for i := range x {
		if mask.At(i) && r.Float64() < rate {
			x[i] = resample(i)
		}
	}
}

// resampleFeasible draws coordinate j from the sigma-normal mixture,
// rejection-sampling until it lands in bounds (or falling back to a
// clamp after a bounded number of attempts); unbounded runs accept the
// first draw, per §4.1's "sampling falls back to normal sampling" clause.
func (o *Optimizer) resampleFeasible(j int) float64 {
	if o.b == nil {
		return o.sigma.sample(o.r, j)
	}
	const maxAttempts = 32
	var v float64
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v = o.sigma.sample(o.r, j)
		if v >= o.b.Lower[j] && v <= o.b.Upper[j] {
			return v
		}
	}
	if v < o.b.Lower[j] {
		return o.b.Lower[j]
	}
	if v > o.b.Upper[j] {
		return o.b.Upper[j]
	}
	return v
}

func (o *Optimizer) clampInPlace(x []float64) {
	if o.b != nil {
		o.b.ClampInPlace(x)
	}
}

// step runs §4.5's seven-step body for slot p against one evaluation of
// fit.
func (o *Optimizer) step(p int, fit *fitness.SingleObjective) {
	dim := o.cfg.Dim
	xp := o.x[p]
	xb := o.x[o.bestI]

	picks := o.r.DistinctInts(2, o.cfg.PopSize, p, o.bestI)
	r1, r2 := picks[0], picks[1]

	x := make([]float64, dim)
	copy(x, xp)
	forced := o.r.Intn(dim)
	for j := 0; j < dim; j++ {
		if j == forced || o.r.Float64() < o.cr {
			v := xb[j] + o.f*(o.x[r1][j]-o.x[r2][j])
			if o.b != nil && (v < o.b.Lower[j] || v > o.b.Upper[j]) {
				v = o.resampleFeasible(j)
			}
			x[j] = v
		}
	}

	if o.cfg.Ints.Any() {
		integerMutate(x, o.cfg.Ints, o.cfg.MinMutate, o.cfg.MaxMutate, o.r, func(i int) float64 {
			return math.Round(o.resampleFeasible(i))
		})
		o.cfg.Ints.RoundInts(x)
	}

	y := fit.Eval(x)
	if y >= o.y[p] {
		o.reject(p)
		return
	}

	finalX, finalY := x, y
	xprime := make([]float64, dim)
	for j := range xprime {
		xprime[j] = xb[j] + 0.5*(x[j]-xp[j])
	}
	o.clampInPlace(xprime)
	if o.cfg.Ints.Any() {
		integerMutate(xprime, o.cfg.Ints, o.cfg.MinMutate, o.cfg.MaxMutate, o.r, func(i int) float64 {
			return math.Round(o.resampleFeasible(i))
		})
		o.cfg.Ints.RoundInts(xprime)
	}
	yprime := fit.Eval(xprime)
	if yprime < y {
		finalX, finalY = xprime, yprime
	}

	o.x[p] = finalX
	o.y[p] = finalY
	o.popIter[p] = o.iterations

	if finalY < o.y[o.bestI] {
		o.bestI = p
	}
	if finalY < o.bestY {
		o.sigma.update(finalX)
		o.bestY = finalY
		o.bestX = append([]float64{}, finalX...)
	}
}

// reject applies §4.5 step 7: with probability proportional to the
// slot's age relative to Keep, reinitialize it from the sigma-normal
// mixture and reset its value to +Inf so the next attempt is always an
// improvement.
func (o *Optimizer) reject(p int) {
	age := o.iterations - o.popIter[p]
	prob := float64(age) / float64(o.cfg.Keep)
	if prob > 1 {
		prob = 1
	}
	if o.r.Float64() >= prob {
		return
	}
	x := o.sigma.sampleVector(o.r)
	o.clampInPlace(x)
	if o.cfg.Ints.Any() {
		o.cfg.Ints.RoundInts(x)
	}
	o.x[p] = x
	o.y[p] = math.Inf(1)
	o.popIter[p] = o.iterations
}

func (o *Optimizer) stopReason(fit *fitness.SingleObjective) string {
	switch {
	case fit.Terminated():
		return "terminated"
	case o.bestY < o.cfg.StopFitness:
		return "stopfitness"
	default:
		return "evaluations"
	}
}

func (o *Optimizer) done(fit *fitness.SingleObjective) bool {
	return fit.Evaluations() >= int64(o.cfg.MaxEvaluations) || fit.Terminated() || o.bestY < o.cfg.StopFitness
}

// Run drives the optimizer to termination (evaluation budget exhausted,
// cooperative termination, or bestY below StopFitness) and returns the
// final result, per §4.5/§6.2/§8.
func (o *Optimizer) Run(fit *fitness.SingleObjective) Result {
	for !o.done(fit) {
		o.iterations++
		o.f, o.cr = oscillate(o.iterations, o.cfg.F, o.cfg.CR)
		for p := 0; p < o.cfg.PopSize; p++ {
			if o.done(fit) {
				break
			}
			o.step(p, fit)
		}
	}
	return Result{
		BestX:       append([]float64{}, o.bestX...),
		BestY:       o.bestY,
		Evaluations: fit.Evaluations(),
		Iterations:  o.iterations,
		Stopped:     o.stopReason(fit),
	}
}
