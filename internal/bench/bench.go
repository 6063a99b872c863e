// Package bench provides the fixed benchmark problems the CLI's `bench`,
// `run` and `asktell` subcommands work with, shaped after spec §8's
// end-to-end scenarios: Sphere (LDE smoke test), ZDT1 (MODE NSGA-mode
// front quality), Constrained (MODE ranking correctness), and
// MixedInteger (MODE integer-mutation correctness). Grounded on the
// ZDT/DTLZ benchmark shape used by the pack's scheduler-plugins
// multi-objective examples (pkg/multiobjective/benchmarks), generalized
// to the plain Eval-callback contract this module's optimizers expect.
package bench

import "math"

// Problem is the shape the CLI and tests drive every benchmark through.
type Problem interface {
	Name() string
	Dim() int
	NObj() int
	NCon() int
	Bounds() (lower, upper []float64)
	IntMask() []bool
	Eval(x []float64) []float64
}

// Sphere is a single-objective, unconstrained, continuous problem:
// f(x) = sum(x_i^2). Used for LDE's scenario 1.
type Sphere struct {
	N int
}

func (s Sphere) Name() string { return "sphere" }
func (s Sphere) Dim() int     { return s.N }
func (s Sphere) NObj() int    { return 1 }
func (s Sphere) NCon() int    { return 0 }

func (s Sphere) Bounds() (lower, upper []float64) {
	lower = make([]float64, s.N)
	upper = make([]float64, s.N)
	for i := range lower {
		lower[i] = -5
		upper[i] = 5
	}
	return lower, upper
}

func (s Sphere) IntMask() []bool { return nil }

func (s Sphere) Eval(x []float64) []float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return []float64{sum}
}

// EvalScalar is Sphere's single-objective form, for direct use with
// fitness.SingleObjective / lde.Optimizer.
func (s Sphere) EvalScalar(x []float64) float64 {
	return s.Eval(x)[0]
}

// ZDT1 is Zitzler-Deitzer-Thiele problem 1: two objectives, no
// constraints, a convex Pareto front at g(x)=1. Used for MODE's NSGA-mode
// scenario 2.
type ZDT1 struct {
	N int
}

func (z ZDT1) Name() string { return "zdt1" }
func (z ZDT1) Dim() int     { return z.N }
func (z ZDT1) NObj() int    { return 2 }
func (z ZDT1) NCon() int    { return 0 }

func (z ZDT1) Bounds() (lower, upper []float64) {
	lower = make([]float64, z.N)
	upper = make([]float64, z.N)
	for i := range upper {
		upper[i] = 1
	}
	return lower, upper
}

func (z ZDT1) IntMask() []bool { return nil }

func (z ZDT1) Eval(x []float64) []float64 {
	f1 := x[0]
	g := 1.0
	for _, v := range x[1:] {
		g += 9 * v / float64(len(x)-1)
	}
	f2 := g * (1 - math.Sqrt(f1/g))
	return []float64{f1, f2}
}

// Constrained is the single-objective, two-constraint quadratic of §6/§8
// scenario 3: minimize x0^2 subject to x0-1<=0 and -x0<=0, optimum at
// x0=0.
type Constrained struct{}

func (Constrained) Name() string { return "constrained" }
func (Constrained) Dim() int     { return 1 }
func (Constrained) NObj() int    { return 1 }
func (Constrained) NCon() int    { return 2 }

func (Constrained) Bounds() (lower, upper []float64) {
	return []float64{-10}, []float64{10}
}

func (Constrained) IntMask() []bool { return nil }

func (Constrained) Eval(x []float64) []float64 {
	return []float64{x[0] * x[0], x[0] - 1, -x[0]}
}

// MixedInteger is the d=4 mixed continuous/integer quadratic of §8
// scenario 4: x0 and x2 are integer-constrained, x1 and x3 continuous.
type MixedInteger struct{}

func (MixedInteger) Name() string { return "mixed_integer" }
func (MixedInteger) Dim() int     { return 4 }
func (MixedInteger) NObj() int    { return 1 }
func (MixedInteger) NCon() int    { return 0 }

func (MixedInteger) Bounds() (lower, upper []float64) {
	return []float64{0, -5, 0, -5}, []float64{5, 5, 5, 5}
}

func (MixedInteger) IntMask() []bool { return []bool{true, false, true, false} }

func (MixedInteger) Eval(x []float64) []float64 {
	d0 := x[0] - 3
	d1 := x[1] - 1.5
	d2 := x[2] - 2
	d3 := x[3]
	return []float64{d0*d0 + d1*d1 + d2*d2 + d3*d3}
}

// All lists every registered benchmark, in the order the CLI's `bench`
// command presents them.
func All() []Problem {
	return []Problem{
		Sphere{N: 5},
		ZDT1{N: 30},
		Constrained{},
		MixedInteger{},
	}
}

// ByName looks up a benchmark by its Name(), for CLI flag dispatch.
func ByName(name string) (Problem, bool) {
	for _, p := range All() {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}
