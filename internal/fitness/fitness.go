// Package fitness wraps user-supplied objective callbacks with the
// sanitization, evaluation counting, and cooperative termination the two
// optimizer cores share. Neither MODE nor LDE calls a user function
// directly — every call passes through a Fitness so non-finite results
// never reach the ranking or selection logic.
package fitness

import (
	"math"
	"sync/atomic"
)

// Sentinel replaces any non-finite objective or constraint value. It is
// large enough to always rank worse than any realistic finite value while
// staying representable in further arithmetic (unlike +Inf, which would
// poison crowding-distance sums).
const Sentinel = 1e99

// MultiObjectiveFunc evaluates a decision vector and returns nobj
// objective values followed by ncon constraint values (constraint <= 0
// means satisfied).
type MultiObjectiveFunc func(x []float64) []float64

// SingleObjectiveFunc evaluates a decision vector and returns one scalar
// objective.
type SingleObjectiveFunc func(x []float64) float64

// counters is the sanitize/count/terminate core shared by both wrappers
// below.
type counters struct {
	evaluations atomic.Int64
	terminate   atomic.Bool
}

func (c *counters) resetEvaluations() { c.evaluations.Store(0) }
func (c *counters) evaluationsCount() int64 { return c.evaluations.Load() }
func (c *counters) setTerminate()     { c.terminate.Store(true) }
func (c *counters) terminated() bool  { return c.terminate.Load() }

func sanitize(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = Sentinel
		} else {
			out[i] = v
		}
	}
	return out
}

// MultiObjective wraps a MultiObjectiveFunc for MODE. Safe to call
// concurrently — it holds no mutable state beyond the atomic counters, and
// the wrapped user function is assumed reentrant.
type MultiObjective struct {
	counters
	Nobj int
	Ncon int
	eval MultiObjectiveFunc
}

// NewMultiObjective wraps eval for a problem with nobj objectives and ncon
// constraints.
func NewMultiObjective(eval MultiObjectiveFunc, nobj, ncon int) *MultiObjective {
	return &MultiObjective{eval: eval, Nobj: nobj, Ncon: ncon}
}

// Eval evaluates x, sanitizes the result, and increments the evaluation
// counter. The returned slice always has length Nobj+Ncon.
func (f *MultiObjective) Eval(x []float64) []float64 {
	y := f.eval(x)
	f.evaluations.Add(1)
	return sanitize(y)
}

// ResetEvaluations zeroes the evaluation counter.
func (f *MultiObjective) ResetEvaluations() { f.resetEvaluations() }

// Evaluations returns the number of Eval calls since construction or the
// last ResetEvaluations.
func (f *MultiObjective) Evaluations() int64 { return f.evaluationsCount() }

// SetTerminate latches a cooperative termination request.
func (f *MultiObjective) SetTerminate() { f.setTerminate() }

// Terminated reports whether SetTerminate has been called.
func (f *MultiObjective) Terminated() bool { return f.terminated() }

// SingleObjective wraps a SingleObjectiveFunc for LDE.
type SingleObjective struct {
	counters
	eval SingleObjectiveFunc
}

// NewSingleObjective wraps eval for a scalar-objective problem.
func NewSingleObjective(eval SingleObjectiveFunc) *SingleObjective {
	return &SingleObjective{eval: eval}
}

// Eval evaluates x and sanitizes the scalar result.
func (f *SingleObjective) Eval(x []float64) float64 {
	y := f.eval(x)
	f.evaluations.Add(1)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return Sentinel
	}
	return y
}

// ResetEvaluations zeroes the evaluation counter.
func (f *SingleObjective) ResetEvaluations() { f.resetEvaluations() }

// Evaluations returns the number of Eval calls since construction or the
// last ResetEvaluations.
func (f *SingleObjective) Evaluations() int64 { return f.evaluationsCount() }

// SetTerminate latches a cooperative termination request.
func (f *SingleObjective) SetTerminate() { f.setTerminate() }

// Terminated reports whether SetTerminate has been called.
func (f *SingleObjective) Terminated() bool { return f.terminated() }
