package lde

import (
	"math"
	"testing"

	"github.com/kestrelopt/modelde/internal/fitness"
)

func sphereConfig(dim int) Config {
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	init := make([]float64, dim)
	for i := range lower {
		lower[i] = -5
		upper[i] = 5
		init[i] = 3
	}
	return Config{
		Dim: dim, Init: init, Seed: 1,
		Lower: lower, Upper: upper,
		MaxEvaluations: 4000, PopSize: 20, Keep: 20,
		StopFitness: -1e18,
	}
}

func sphereSingleObjective() *fitness.SingleObjective {
	return fitness.NewSingleObjective(func(x []float64) float64 {
		sum := 0.0
		for _, v := range x {
			sum += v * v
		}
		return sum
	})
}

func TestRunConvergesOnSphere(t *testing.T) {
	cfg := sphereConfig(3)
	o, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fit := sphereSingleObjective()
	res := o.Run(fit)

	if res.BestY > 1.0 {
		t.Errorf("BestY = %f, expected convergence well below the initial value", res.BestY)
	}
	if res.Evaluations == 0 {
		t.Error("expected evaluations to have been counted")
	}
	if res.Stopped != "evaluations" {
		t.Errorf("Stopped = %q, want \"evaluations\"", res.Stopped)
	}
}

func TestRunRespectsStopFitness(t *testing.T) {
	cfg := sphereConfig(2)
	cfg.StopFitness = 1000 // trivially satisfied once any slot beats this
	cfg.MaxEvaluations = 1_000_000
	o, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fit := sphereSingleObjective()
	res := o.Run(fit)
	if res.Stopped != "stopfitness" {
		t.Errorf("Stopped = %q, want \"stopfitness\"", res.Stopped)
	}
}

func TestRunTerminatesCooperatively(t *testing.T) {
	cfg := sphereConfig(2)
	cfg.MaxEvaluations = 1_000_000
	o, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fit := sphereSingleObjective()
	fit.SetTerminate()

	res := o.Run(fit)
	if res.Stopped != "terminated" {
		t.Errorf("Stopped = %q, want \"terminated\"", res.Stopped)
	}
}

func TestOptimizerNeverWorsensBestY(t *testing.T) {
	cfg := sphereConfig(3)
	o, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fit := sphereSingleObjective()

	prevBest := math.Inf(1)
	for i := 0; i < 50; i++ {
		o.step(i%cfg.PopSize, fit)
		if o.bestY > prevBest {
			t.Fatalf("bestY worsened: %f -> %f", prevBest, o.bestY)
		}
		prevBest = o.bestY
	}
}
