package opt

import (
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/lde"
)

// LDEAdapter wraps an lde.Optimizer to conform to Optimizer.
type LDEAdapter struct {
	cfg lde.Config
	fit *fitness.SingleObjective
}

// NewLDE creates an LDEAdapter.
func NewLDE(cfg lde.Config, fit *fitness.SingleObjective) Optimizer {
	return &LDEAdapter{cfg: cfg, fit: fit}
}

// Run constructs a fresh lde.Optimizer and drives it to completion,
// returning its single best vector as a one-row population.
func (a *LDEAdapter) Run() (x [][]float64, y [][]float64) {
	o, err := lde.New(a.cfg)
	if err != nil {
		return nil, nil
	}
	res := o.Run(a.fit)
	return [][]float64{res.BestX}, [][]float64{{res.BestY}}
}
