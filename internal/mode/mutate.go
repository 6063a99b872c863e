package mode

import (
	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/rng"
)

// integerMutate applies the shared §4.8 mutation pass: for each discrete
// coordinate, with probability drawn from a per-call rate in
// [minMutate, maxMutate] divided by the number of discrete coordinates,
// resample that coordinate via resample. MODE's DE and NSGA variation
// both call it with a closure that resamples uniformly within bounds;
// internal/lde keeps its own copy that resamples from its sigma-normal
// mixture.
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
