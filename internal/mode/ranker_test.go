package mode

import (
	"math"
	"testing"
)

func TestDominates(t *testing.T) {
	if !dominates([]float64{1, 1}, []float64{2, 2}) {
		t.Error("(1,1) should dominate (2,2)")
	}
	if dominates([]float64{1, 2}, []float64{2, 1}) {
		t.Error("(1,2) and (2,1) are mutually non-dominated")
	}
	if dominates([]float64{1, 1}, []float64{1, 1}) {
		t.Error("identical points do not dominate each other")
	}
}

func TestParetoLevelsSingleFront(t *testing.T) {
	// Two mutually non-dominated points: neither dominates anything.
	y := [][]float64{{0, 1}, {1, 0}}
	dom := paretoLevels(y)
	for i, d := range dom {
		if d != 0 {
			t.Errorf("point %d: dominance count %f, want 0", i, d)
		}
	}
}

func TestParetoLevelsNestedFronts(t *testing.T) {
	// Point 0 dominates both 1 and 2; 1 and 2 are mutually non-dominated.
	y := [][]float64{{0, 0}, {1, 1}, {2, 0.5}}
	dom := paretoLevels(y)
	if dom[0] != 2 {
		t.Errorf("front-best point dominance count = %f, want 2", dom[0])
	}
}

func TestParetoPrefersFeasibleOverInfeasible(t *testing.T) {
	// nobj=1, ncon=1: row 0 feasible (con<=0), row 1 infeasible.
	y := [][]float64{
		{1.0, -0.1}, // feasible
		{0.5, 0.2},  // infeasible, better objective
	}
	score := Pareto(y, 1, 1)
	if score[0] <= score[1] {
		t.Errorf("feasible point should score higher: got %v", score)
	}
}

func TestParetoRanksMoreFeasibleConstraintsBetter(t *testing.T) {
	y := [][]float64{
		{1.0, 0.1, 0.1}, // violates both
		{1.0, 0.05, 0},  // violates one
	}
	score := Pareto(y, 1, 2)
	if score[1] <= score[0] {
		t.Errorf("fewer violated constraints should score higher: got %v", score)
	}
}

func TestCrowdDistBoundaryPointsAreInfinite(t *testing.T) {
	y0 := []float64{3, 1, 2}
	dist := CrowdDist(y0)
	// index 1 has the smallest value (boundary), index 0 the largest (boundary)
	if !math.IsInf(dist[1], 1) || !math.IsInf(dist[0], 1) {
		t.Errorf("boundary points should have infinite crowding distance, got %v", dist)
	}
	if math.IsInf(dist[2], 1) {
		t.Errorf("interior point should have finite crowding distance, got %v", dist)
	}
}

func TestCrowdDistSmallPopulations(t *testing.T) {
	dist := CrowdDist([]float64{1, 2})
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			t.Errorf("populations of size <=2 should all be infinite crowding distance, got %v", dist)
		}
	}
}

func TestCrowdDistAllIdenticalValues(t *testing.T) {
	dist := CrowdDist([]float64{5, 5, 5, 5})
	for _, d := range dist {
		if d != 0 {
			t.Errorf("identical values should have zero crowding distance, got %v", dist)
		}
	}
}
