package mode

import (
	"fmt"

	"github.com/kestrelopt/modelde/internal/bounds"
)

// Config holds every MODE tunable from spec §6.1/§6.4. A value <= 0 where
// positivity is required is replaced by its default in Sanitize, mirroring
// the teacher's JobConfig defaulting convention.
type Config struct {
	Dim  int
	Nobj int
	Ncon int
	Seed int64

	Lower, Upper []float64
	Ints         bounds.IntMask

	MaxEvaluations int
	PopSize        int
	Workers        int

	F, CR        float64
	ProC, DisC   float64
	ProM, DisM   float64
	NSGAUpdate   bool
	ParetoUpdate float64
	MinMutate    float64
	MaxMutate    float64
	LogPeriod        int
}

// Sanitize replaces every <=0 tunable with its documented default and
// clamps Workers to [1, PopSize].
func (c *Config) Sanitize() {
	if c.PopSize <= 0 {
		c.PopSize = 128
	}
	if c.MaxEvaluations <= 0 {
		c.MaxEvaluations = 500000
	}
	if c.F <= 0 {
		c.F = 0.5
	}
	if c.CR <= 0 {
		c.CR = 0.9
	}
	if c.ProC <= 0 {
		c.ProC = 1.0
	}
	if c.DisC <= 0 {
		c.DisC = 20
	}
	if c.ProM <= 0 {
		c.ProM = 1.0
	}
	if c.DisM <= 0 {
		c.DisM = 20
	}
	if c.MinMutate <= 0 {
		c.MinMutate = 0.1
	}
	if c.MaxMutate <= 0 {
		c.MaxMutate = 0.5
	}
	if c.LogPeriod <= 0 {
		c.LogPeriod = 1000
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Workers > c.PopSize {
		c.Workers = c.PopSize
	}
}

// Validate checks the structural invariants Sanitize cannot repair.
func (c *Config) Validate() error {
	if c.Dim <= 0 {
		return fmt.Errorf("mode: dim must be positive, got %d", c.Dim)
	}
	if c.Nobj <= 0 {
		return fmt.Errorf("mode: nobj must be positive, got %d", c.Nobj)
	}
	if c.Ncon < 0 {
		return fmt.Errorf("mode: ncon must be non-negative, got %d", c.Ncon)
	}
	if len(c.Lower) != c.Dim || len(c.Upper) != c.Dim {
		return fmt.Errorf("mode: lower/upper must have length dim=%d", c.Dim)
	}
	if len(c.Ints) != 0 && len(c.Ints) != c.Dim {
		return fmt.Errorf("mode: ints mask must be empty or length dim=%d", c.Dim)
	}
	return nil
}
