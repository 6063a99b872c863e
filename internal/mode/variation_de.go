package mode

import (
	"math"

	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/rng"
)

// deIndices picks three pairwise-distinct survivor indices r1, r2, r3, all
// distinct from p, per §4.6.2. When paretoUpdate > 0, r3 is biased toward
// better-ranked survivors (index 0 = best, per popUpdate's ordering) via
// r3 = floor(u^(1+paretoUpdate) * popsize). §9's open question: when
// popsize < 4 there may be no fully distinct triple available, so once a
// bounded number of retries fail to find a fresh candidate the
// distinctness requirement is relaxed rather than looping forever — see
// rng.Source.DistinctInts.
func deIndices(r *rng.Source, popsize, p int, paretoUpdate float64) (r1, r2, r3 int) {
	picks := r.DistinctInts(2, popsize, p)
	r1, r2 = picks[0], picks[1]

	if paretoUpdate > 0 {
		u := r.Float64()
		r3 = int(math.Pow(u, 1+paretoUpdate) * float64(popsize))
		if r3 >= popsize {
			r3 = popsize - 1
		}
		attempts := 0
		for (r3 == p || r3 == r1 || r3 == r2) && attempts < 64 {
			u = r.Float64()
			r3 = int(math.Pow(u, 1+paretoUpdate) * float64(popsize))
			if r3 >= popsize {
				r3 = popsize - 1
			}
			attempts++
		}
		return r1, r2, r3
	}

	more := r.DistinctInts(1, popsize, p, r1, r2)
	return r1, r2, more[0]
}

// deChild generates one DE/rand/1-with-bias offspring for slot p per
// §4.6.2: donor = x_r3 + F*(x_r1 - x_r2), binomial crossover with one
// forced coordinate, projected to feasibility and integer-mutated.
func deChild(r *rng.Source, survivors []Individual, p int, f, cr, paretoUpdate float64, b *bounds.Bounds, mask bounds.IntMask, minMutate, maxMutate float64) []float64 {
	popsize := len(survivors)
	r1, r2, r3 := deIndices(r, popsize, p, paretoUpdate)

	dim := len(survivors[p].X)
	donor := make([]float64, dim)
	for j := 0; j < dim; j++ {
		donor[j] = survivors[r3].X[j] + f*(survivors[r1].X[j]-survivors[r2].X[j])
	}

	child := make([]float64, dim)
	copy(child, survivors[p].X)
	forced := r.Intn(dim)
	for j := 0; j < dim; j++ {
		if j == forced || r.Float64() < cr {
			child[j] = donor[j]
		}
	}

	b.ClampInPlace(child)
	if mask.Any() {
		integerMutate(child, mask, minMutate, maxMutate, r, func(i int) float64 {
			return math.Round(b.SampleAt(r, i))
		})
		mask.RoundInts(child)
	}
	return child
}

// oscillate implements the §4.5/§4.6.2 F/CR schedule: alternate between
// the configured (F0, CR0) and half that, every other iteration.
func oscillate(iteration int, f0, cr0 float64) (f, cr float64) {
	if iteration%2 == 0 {
		return f0, cr0
	}
	return 0.5 * f0, 0.5 * cr0
}
