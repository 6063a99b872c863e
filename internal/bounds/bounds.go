// Package bounds implements the decision-space box constraints shared by
// both optimizer cores: sampling within the box, projecting arbitrary
// points to the closest feasible point, and normalizing coordinates into
// [0, 1] for the variation operators that need a scale-free view of the
// space.
package bounds

import (
	"fmt"
	"math"

	"github.com/kestrelopt/modelde/internal/rng"
)

// Bounds is an immutable per-optimization decision-space box: Lower[i] <=
// Upper[i] for every coordinate i.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// New validates and returns a Bounds. Returns an error if lower/upper have
// mismatched lengths or any lower[i] > upper[i].
func New(lower, upper []float64) (*Bounds, error) {
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("bounds: lower has %d dims, upper has %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("bounds: lower[%d]=%g > upper[%d]=%g", i, lower[i], i, upper[i])
		}
	}
	return &Bounds{Lower: append([]float64{}, lower...), Upper: append([]float64{}, upper...)}, nil
}

// Dim returns the number of coordinates.
func (b *Bounds) Dim() int { return len(b.Lower) }

// Scale returns upper - lower componentwise.
func (b *Bounds) Scale() []float64 {
	s := make([]float64, len(b.Lower))
	for i := range s {
		s[i] = b.Upper[i] - b.Lower[i]
	}
	return s
}

// NormAt normalizes v into [0, 1] using coordinate i's range.
func (b *Bounds) NormAt(i int, v float64) float64 {
	scale := b.Upper[i] - b.Lower[i]
	if scale == 0 {
		return 0
	}
	return (v - b.Lower[i]) / scale
}

// Sample draws a uniform point in the box.
func (b *Bounds) Sample(r *rng.Source) []float64 {
	x := make([]float64, len(b.Lower))
	for i := range x {
		x[i] = b.SampleAt(r, i)
	}
	return x
}

// SampleAt draws a uniform value for coordinate i.
func (b *Bounds) SampleAt(r *rng.Source, i int) float64 {
	return b.Lower[i] + r.Float64()*(b.Upper[i]-b.Lower[i])
}

// ClosestFeasible returns the componentwise clamp of x into the box.
func (b *Bounds) ClosestFeasible(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	b.ClampInPlace(out)
	return out
}

// ClampInPlace clamps x into the box in place.
func (b *Bounds) ClampInPlace(x []float64) {
	for i := range x {
		if x[i] < b.Lower[i] {
			x[i] = b.Lower[i]
		} else if x[i] > b.Upper[i] {
			x[i] = b.Upper[i]
		}
	}
}

// ClampMatrix clamps every column (individual) of a d x n matrix into the
// box, in place.
func ClampMatrix(b *Bounds, columns [][]float64) {
	for _, col := range columns {
		b.ClampInPlace(col)
	}
}

// IntMask marks which coordinates are constrained to integer values. A nil
// or empty mask means all-continuous.
type IntMask []bool

// Any reports whether any coordinate is discrete.
func (m IntMask) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of discrete coordinates.
func (m IntMask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// At reports whether coordinate i is discrete; a nil/short mask treats
// out-of-range coordinates as continuous.
func (m IntMask) At(i int) bool {
	if i < 0 || i >= len(m) {
		return false
	}
	return m[i]
}

// RoundInts rounds every discrete coordinate of x to the nearest integer,
// in place, per the mask.
func (m IntMask) RoundInts(x []float64) {
	for i := range x {
		if m.At(i) {
			x[i] = math.Round(x[i])
		}
	}
}
