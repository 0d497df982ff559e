package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.System != "pendulum" {
		t.Errorf("expected default system pendulum, got %s", cfg.System)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected dt %f, got %f", DefaultDt, cfg.Dt)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := Default()
	cfg.System = "unicycle"
	cfg.Costs.URef = []float64{0.5, 0.0}
	cfg.Costs.StateWeight = 0.1

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.System != "unicycle" {
		t.Errorf("expected unicycle, got %s", loaded.System)
	}
	if len(loaded.Costs.URef) != 2 || loaded.Costs.URef[0] != 0.5 {
		t.Errorf("uref round trip mismatch: %v", loaded.Costs.URef)
	}
	if loaded.Costs.StateWeight != 0.1 {
		t.Errorf("state weight round trip mismatch: %f", loaded.Costs.StateWeight)
	}
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	if err := os.WriteFile(path, []byte("system: double_integrator\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.System != "double_integrator" {
		t.Errorf("expected double_integrator, got %s", cfg.System)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("unset fields should keep defaults, dt = %f", cfg.Dt)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"negative weight", func(c *Config) { c.Costs.ControlWeight = -1 }},
		{"all weights zero", func(c *Config) { c.Costs.ControlWeight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetInitState(t *testing.T) {
	cfg := Default()
	cfg.System = "unicycle"

	x0 := cfg.GetInitState()
	if len(x0) != 3 {
		t.Errorf("unicycle default init state should have 3 entries, got %d", len(x0))
	}

	cfg.InitState = []float64{9, 9, 9}
	x0 = cfg.GetInitState()
	if x0[0] != 9 {
		t.Error("explicit init state should win over defaults")
	}

	x0[0] = 1
	if cfg.InitState[0] != 9 {
		t.Error("GetInitState should return a copy")
	}
}
