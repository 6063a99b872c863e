package opt

import (
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/mode"
)

// ModeAdapter wraps a mode.Optimizer to conform to Optimizer, grounded on
// the teacher's MayflyAdapter shape.
type ModeAdapter struct {
	cfg   mode.Config
	fit   *fitness.MultiObjective
	logFn mode.LogFunc
	async bool
}

// NewMode creates a ModeAdapter. async selects DoOptimizeDelayedUpdate
// over the synchronous DoOptimize loop.
func NewMode(cfg mode.Config, fit *fitness.MultiObjective, logFn mode.LogFunc, async bool) Optimizer {
	return &ModeAdapter{cfg: cfg, fit: fit, logFn: logFn, async: async}
}

// Run constructs a fresh mode.Optimizer and drives it to completion.
func (a *ModeAdapter) Run() (x [][]float64, y [][]float64) {
	o, err := mode.New(a.cfg, a.fit, a.logFn)
	if err != nil {
		return nil, nil
	}
	if a.async {
		o.DoOptimizeDelayedUpdate()
	} else {
		o.DoOptimize()
	}
	return o.Population(), o.Values()
}
