package bounds

import (
	"math"
	"testing"

	"github.com/kestrelopt/modelde/internal/rng"
)

func TestNewRejectsMismatchedLengths(t *testing.T) {
	if _, err := New([]float64{0, 0}, []float64{1}); err == nil {
		t.Fatal("expected an error for mismatched lower/upper lengths")
	}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	if _, err := New([]float64{1}, []float64{0}); err == nil {
		t.Fatal("expected an error for lower > upper")
	}
}

func TestSampleStaysInBox(t *testing.T) {
	b, err := New([]float64{-1, 0}, []float64{1, 10})
	if err != nil {
		t.Fatal(err)
	}
	r := rng.New(1)
	for i := 0; i < 1000; i++ {
		x := b.Sample(r)
		for j, v := range x {
			if v < b.Lower[j] || v > b.Upper[j] {
				t.Fatalf("sample %v out of bounds at %d", x, j)
			}
		}
	}
}

func TestClampInPlace(t *testing.T) {
	b, err := New([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{-5, 5}
	b.ClampInPlace(x)
	if x[0] != 0 || x[1] != 1 {
		t.Fatalf("got %v, want [0 1]", x)
	}
}

func TestNormAtRoundTrips(t *testing.T) {
	b, err := New([]float64{-10}, []float64{10})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.NormAt(0, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("NormAt(0, 0) = %f, want 0.5", got)
	}
	if got := b.NormAt(0, -10); got != 0 {
		t.Errorf("NormAt(0, lower) = %f, want 0", got)
	}
	if got := b.NormAt(0, 10); got != 1 {
		t.Errorf("NormAt(0, upper) = %f, want 1", got)
	}
}

func TestNormAtZeroScale(t *testing.T) {
	b, err := New([]float64{5}, []float64{5})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.NormAt(0, 5); got != 0 {
		t.Errorf("zero-scale NormAt = %f, want 0", got)
	}
}

func TestIntMask(t *testing.T) {
	m := IntMask{true, false, true}
	if !m.Any() {
		t.Error("Any() = false, want true")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
	if !m.At(0) || m.At(1) || !m.At(2) {
		t.Error("At() mismatched mask")
	}
	if m.At(10) {
		t.Error("At() out of range should be false")
	}

	x := []float64{1.4, 2.6, 3.5}
	m.RoundInts(x)
	if x[0] != 1 || x[1] != 2.6 || x[2] != 4 {
		t.Errorf("RoundInts gave %v", x)
	}
}

func TestEmptyIntMaskIsAllContinuous(t *testing.T) {
	var m IntMask
	if m.Any() {
		t.Error("nil mask should report Any() = false")
	}
	if m.At(0) {
		t.Error("nil mask should report At(i) = false")
	}
}

func TestClosestFeasible(t *testing.T) {
	b, err := New([]float64{0}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	out := b.ClosestFeasible([]float64{5})
	if out[0] != 1 {
		t.Errorf("got %v, want [1]", out)
	}
}
