package mode

import (
	"math"

	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/rng"
)

// sbxBeta draws one SBX spread factor per §4.6.1: with probability 0.5, or
// whenever the per-coordinate proC mask triggers, inherit the midpoint
// (beta=1); otherwise draw the two-branch power-law beta and sign-flip it
// with probability 0.5.
func sbxBeta(r *rng.Source, disC, proC float64) float64 {
	if r.Float64() < 0.5 || r.Float64() >= proC {
		return 1
	}
	u := r.Float64()
	var beta float64
	if u <= 0.5 {
		beta = math.Pow(2*u, 1/(disC+1))
	} else {
		beta = math.Pow(2*u, -1/(disC+1))
	}
	if r.Float64() < 0.5 {
		beta = -beta
	}
	return beta
}

// sbxCrossover produces two children from a parent pair per §4.6.1, using
// the perturbed distribution index disC' the caller drew once for the
// whole generation.
func sbxCrossover(r *rng.Source, p1, p2 []float64, disCPrime, proC float64) (c1, c2 []float64) {
	dim := len(p1)

	c1 = make([]float64, dim)
	c2 = make([]float64, dim)
	for j := 0; j < dim; j++ {
		beta := sbxBeta(r, disCPrime, proC)
		mid := 0.5 * (p1[j] + p2[j])
		half := 0.5 * beta * (p1[j] - p2[j])
		c1[j] = mid + half
		c2[j] = mid - half
	}
	return c1, c2
}

// polyMutation applies the §4.6.1 polynomial mutation in place, with
// per-coordinate probability proM/dim, using the perturbed distribution
// index disM' the caller drew once for the whole generation.
func polyMutation(r *rng.Source, x []float64, b *bounds.Bounds, disMPrime, proM float64) {
	dim := len(x)
	rate := proM / float64(dim)
	for j := 0; j < dim; j++ {
		if r.Float64() >= rate {
			continue
		}
		mu := r.Float64()
		n := b.NormAt(j, x[j])
		var delta float64
		if mu <= 0.5 {
			delta = math.Pow(2*mu+(1-2*mu)*math.Pow(1-n, disMPrime+1), 1/(disMPrime+1)) - 1
		} else {
			delta = 1 - math.Pow(2*(1-mu)+2*(mu-0.5)*math.Pow(1-n, disMPrime+1), 1/(disMPrime+1))
		}
		scale := b.Upper[j] - b.Lower[j]
		x[j] += scale * delta
	}
}

// nsgaChildren generates popsize offspring from the popsize survivors per
// §4.6.1: split into parent halves, SBX + polynomial mutation per pair,
// then project every offspring to feasibility (and integer-mutate, if a
// mask is active). disC' = (0.5u+0.5)*disC and disM' = (0.5u+0.5)*disM are
// each drawn once for the whole call, matching the original's per-variation
// (per-generation) perturbation.
func nsgaChildren(r *rng.Source, survivors []Individual, b *bounds.Bounds, mask bounds.IntMask, disC, proC, disM, proM, minMutate, maxMutate float64) [][]float64 {
	popsize := len(survivors)
	half := popsize / 2
	children := make([][]float64, 0, popsize)

	disCPrime := (0.5*r.Float64() + 0.5) * disC
	disMPrime := (0.5*r.Float64() + 0.5) * disM

	for i := 0; i < half; i++ {
		p1 := survivors[i].X
		p2 := survivors[half+i].X
		c1, c2 := sbxCrossover(r, p1, p2, disCPrime, proC)

		polyMutation(r, c1, b, disMPrime, proM)
		polyMutation(r, c2, b, disMPrime, proM)

		b.ClampInPlace(c1)
		b.ClampInPlace(c2)
		if mask.Any() {
			resample := func(idx int) float64 { return math.Round(b.SampleAt(r, idx)) }
			integerMutate(c1, mask, minMutate, maxMutate, r, resample)
			integerMutate(c2, mask, minMutate, maxMutate, r, resample)
			mask.RoundInts(c1)
			mask.RoundInts(c2)
		}

		children = append(children, c1, c2)
	}

	for len(children) < popsize {
		children = append(children, b.ClosestFeasible(survivors[len(children)%popsize].X))
	}
	return children[:popsize]
}
