package lde

import (
	"fmt"

	"github.com/kestrelopt/modelde/internal/bounds"
)

// Config holds every LDE tunable from spec §4.5/§6.2/§6.4. A value <= 0
// where positivity is required is replaced by its default in Sanitize,
// mirroring mode.Config's convention.
type Config struct {
	Dim  int
	Init []float64
	Seed int64

	// Lower/Upper may both be empty: LDE then runs unbounded, and its
	// sigma-normal samples around xmean are used as drawn, without the
	// rejection and clamping against the box, per §4.1.
	Lower, Upper []float64
	Ints         bounds.IntMask
	InputSigma   []float64

	MaxEvaluations int
	PopSize        int
	Keep           int

	F, CR                float64
	MinMutate, MaxMutate float64

	// StopFitness has no positivity default (any real value, including
	// negative, is meaningful): the run terminates once bestY drops below
	// it. Its zero value means "stop once bestY < 0"; callers wanting no
	// early stop should set it to a very negative number explicitly.
	StopFitness float64
}

// Sanitize replaces every <=0 tunable with its documented default.
func (c *Config) Sanitize() {
	if c.PopSize <= 0 {
		c.PopSize = 15 * c.Dim
	}
	if c.MaxEvaluations <= 0 {
		c.MaxEvaluations = 50000
	}
	if c.Keep <= 0 {
		c.Keep = 30
	}
	if c.F <= 0 {
		c.F = 0.5
	}
	if c.CR <= 0 {
		c.CR = 0.9
	}
	if c.MinMutate <= 0 {
		c.MinMutate = 0.1
	}
	if c.MaxMutate <= 0 {
		c.MaxMutate = 0.5
	}
}

// Validate checks the structural invariants Sanitize cannot repair.
func (c *Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("lde: dim must be positive, got %d", c.Dim)
	}
	if len(c.Init) != c.Dim {
		return fmt.Errorf("lde: init must have length dim=%d", c.Dim)
	}
	if len(c.Lower) != 0 && len(c.Lower) != c.Dim {
		return fmt.Errorf("lde: lower must be empty or length dim=%d", c.Dim)
	}
	if len(c.Upper) != len(c.Lower) {
		return fmt.Errorf("lde: lower and upper must have equal length")
	}
	if len(c.Ints) != 0 && len(c.Ints) != c.Dim {
		return fmt.Errorf("lde: ints mask must be empty or length dim=%d", c.Dim)
	}
	if c.PopSize < 4 {
		return fmt.Errorf("lde: popsize must be >= 4 for distinct r1/r2 selection, got %d", c.PopSize)
	}
	return nil
}
