package lde

import (
	"math"

	"github.com/kestrelopt/modelde/internal/rng"
)

// sigmaState is LDE's per-coordinate normal-sampling scale, per §3/§4.5:
// it contracts toward 0.5*|xmean-x| (clamped by maxSigma) whenever the
// global best improves, and backs both the out-of-bounds donor resample
// and the stagnant-slot reinitialization mixture.
type sigmaState struct {
	sigma0   []float64
	sigma    []float64
	xmean    []float64
	maxSigma []float64
}

// newSigmaState seeds xmean at init and sigma/sigma0 at inputSigma,
// clamped into (0, maxSigma], where maxSigma = 0.25*(upper-lower) when
// bounds are present, or left unbounded (+Inf, collapsed to 1 if
// inputSigma itself was unset) when they are not.
func newSigmaState(init, inputSigma, lower, upper []float64) *sigmaState {
	dim := len(init)
	s := &sigmaState{
		sigma0:   make([]float64, dim),
		sigma:    make([]float64, dim),
		xmean:    make([]float64, dim),
		maxSigma: make([]float64, dim),
	}
	copy(s.xmean, init)
	bounded := len(lower) == dim && len(upper) == dim
	for j := 0; j < dim; j++ {
		if bounded {
			s.maxSigma[j] = 0.25 * (upper[j] - lower[j])
		} else {
			s.maxSigma[j] = math.Inf(1)
		}
		sig := float64(0)
		if j < len(inputSigma) {
			sig = inputSigma[j]
		}
		if sig <= 0 || sig > s.maxSigma[j] {
			sig = s.maxSigma[j]
			if math.IsInf(sig, 1) {
				sig = 1
			}
		}
		s.sigma0[j] = sig
		s.sigma[j] = sig
	}
	return s
}

// update contracts sigma toward the midpoint move and recenters xmean on
// a global-best improvement, per §4.5 step 6.
func (s *sigmaState) update(x []float64) {
	for j := range s.sigma {
		d := 0.5 * math.Abs(s.xmean[j]-x[j])
		if d > s.maxSigma[j] {
			d = s.maxSigma[j]
		}
		if d > 0 {
			s.sigma[j] = d
		}
		s.xmean[j] = x[j]
	}
}

// sample draws coordinate j from the 50/50 sigma0/sigma mixture around
// xmean, per §4.5 steps 3 and 7.
func (s *sigmaState) sample(r *rng.Source, j int) float64 {
	sig := s.sigma[j]
	if r.Float64() < 0.5 {
		sig = s.sigma0[j]
	}
	return s.xmean[j] + sig*r.NormFloat64()
}

// sampleVector draws a full coordinate vector from the mixture, used for
// age-based slot reinitialization.
func (s *sigmaState) sampleVector(r *rng.Source) []float64 {
	x := make([]float64, len(s.xmean))
	for j := range x {
		x[j] = s.sample(r, j)
	}
	return x
}
