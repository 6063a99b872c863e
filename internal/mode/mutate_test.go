package mode

import (
	"testing"

	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/rng"
)

func TestIntegerMutateSkipsContinuousCoordinates(t *testing.T) {
	r := rng.New(1)
	mask := bounds.IntMask{false, false}
	x := []float64{1, 2}
	integerMutate(x, mask, 0.1, 0.5, r, func(i int) float64 { return 99 })
	if x[0] != 1 || x[1] != 2 {
		t.Errorf("all-continuous mask should never mutate, got %v", x)
	}
}

func TestIntegerMutateTouchesOnlyMaskedCoordinates(t *testing.T) {
	r := rng.New(1)
	mask := bounds.IntMask{true, false, true}
	for trial := 0; trial < 50; trial++ {
		x := []float64{1, 2, 3}
		integerMutate(x, mask, 1, 1, r, func(i int) float64 { return -1 })
		if x[1] != 2 {
			t.Fatalf("continuous coordinate mutated: %v", x)
		}
	}
}
