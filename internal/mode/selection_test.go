package mode

import "testing"

func makeInds(ys [][]float64) []Individual {
	out := make([]Individual, len(ys))
	for i, y := range ys {
		out[i] = Individual{X: []float64{float64(i)}, Y: y}
	}
	return out
}

func TestPopUpdateTruncatesToExactPopsize(t *testing.T) {
	candidates := makeInds([][]float64{
		{0, 0}, {1, 1}, {2, 2}, {0.5, 0.5}, {3, 3}, {4, 4},
	})
	survivors := popUpdate(candidates, 2, 0, 3)
	if len(survivors) != 3 {
		t.Fatalf("got %d survivors, want 3", len(survivors))
	}
}

func TestPopUpdateOrdersBestFirst(t *testing.T) {
	// Single objective: after the ascending presort the best candidate
	// outranks all others and the overflowing level is kept in ascending
	// order, so survivors[0] must be the global best.
	candidates := makeInds([][]float64{{5}, {1}, {3}, {0}, {4}})
	presorted := preSortSingleObjective(candidates, 1, 0)
	survivors := popUpdate(presorted, 1, 0, 3)
	if survivors[0].Y[0] != 0 {
		t.Fatalf("survivors[0].Y[0] = %f, want 0 (the global best)", survivors[0].Y[0])
	}
	if len(survivors) != 3 {
		t.Fatalf("got %d survivors, want 3", len(survivors))
	}
	// Best-first throughout: each row should be no worse than the next.
	for i := 1; i < len(survivors); i++ {
		if survivors[i].Y[0] < survivors[i-1].Y[0] {
			t.Errorf("survivors not best-first ordered: %v", collectY(survivors))
		}
	}
}

func TestPreSortSingleObjectiveOnlyAppliesToNobj1(t *testing.T) {
	candidates := makeInds([][]float64{{5, 0}, {1, 0}})
	out := preSortSingleObjective(candidates, 2, 0)
	if out[0].Y[0] != 5 {
		t.Errorf("multi-objective input should pass through unsorted, got %v", collectY(out))
	}
}

func TestPopUpdateKeepsAllWhenPoolFitsExactly(t *testing.T) {
	candidates := makeInds([][]float64{{0, 0}, {1, 1}})
	survivors := popUpdate(candidates, 2, 0, 2)
	if len(survivors) != 2 {
		t.Fatalf("got %d survivors, want 2", len(survivors))
	}
}
