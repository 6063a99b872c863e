package mode

import "testing"

func TestConfigSanitizeFillsDefaults(t *testing.T) {
	var cfg Config
	cfg.Sanitize()
	if cfg.PopSize != 128 {
		t.Errorf("PopSize default = %d, want 128", cfg.PopSize)
	}
	if cfg.F != 0.5 || cfg.CR != 0.9 {
		t.Errorf("F/CR defaults = %f/%f, want 0.5/0.9", cfg.F, cfg.CR)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers default = %d, want 1", cfg.Workers)
	}
}

func TestConfigSanitizeClampsWorkersToPopsize(t *testing.T) {
	cfg := Config{PopSize: 10, Workers: 50}
	cfg.Sanitize()
	if cfg.Workers != 10 {
		t.Errorf("Workers = %d, want clamped to PopSize=10", cfg.Workers)
	}
}

func TestConfigSanitizeLeavesExplicitValuesAlone(t *testing.T) {
	cfg := Config{PopSize: 20, F: 0.3, CR: 0.1}
	cfg.Sanitize()
	if cfg.PopSize != 20 || cfg.F != 0.3 || cfg.CR != 0.1 {
		t.Errorf("Sanitize overwrote explicit values: %+v", cfg)
	}
}

func TestConfigValidateRejectsBadDim(t *testing.T) {
	cfg := Config{Dim: 0, Nobj: 1, Lower: nil, Upper: nil}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for Dim=0")
	}
}

func TestConfigValidateRejectsMismatchedBounds(t *testing.T) {
	cfg := Config{Dim: 2, Nobj: 1, Lower: []float64{0}, Upper: []float64{1, 1}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for mismatched bounds length")
	}
}

func TestConfigValidateAcceptsWellFormed(t *testing.T) {
	cfg := Config{Dim: 2, Nobj: 1, Ncon: 0, Lower: []float64{0, 0}, Upper: []float64{1, 1}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
