package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultKp       = 10.0
	DefaultKi       = 0.1
	DefaultKd       = 5.0
)

// Config describes one cost evaluation run: the system to roll out, the
// controller driving it and the residual penalties attached to every
// node.
type Config struct {
	System      string           `yaml:"system"`
	Integrator  string           `yaml:"integrator"`
	Controller  string           `yaml:"controller"`
	Dt          float64          `yaml:"dt"`
	Duration    float64          `yaml:"duration"`
	Seed        int64            `yaml:"seed"`
	InitState   []float64        `yaml:"init_state"`
	Costs       CostConfig       `yaml:"costs"`
	Controllers ControllerConfig `yaml:"controller_params"`
}

// CostConfig configures the residual penalties. A zero weight disables
// the corresponding term; URef/XRef default to zero vectors of the
// system's dimensions when omitted.
type CostConfig struct {
	ControlWeight float64   `yaml:"control_weight"`
	StateWeight   float64   `yaml:"state_weight"`
	URef          []float64 `yaml:"uref"`
	XRef          []float64 `yaml:"xref"`
}

type ControllerConfig struct {
	Kp       float64   `yaml:"kp"`
	Ki       float64   `yaml:"ki"`
	Kd       float64   `yaml:"kd"`
	Target   float64   `yaml:"target"`
	Constant []float64 `yaml:"constant"`
}

func Default() *Config {
	return &Config{
		System:     "pendulum",
		Integrator: "rk4",
		Controller: "zero",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Costs: CostConfig{
			ControlWeight: 1.0,
			StateWeight:   0.0,
		},
		Controllers: ControllerConfig{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState returns the configured initial state, falling back to a
// system-specific default.
func (c *Config) GetInitState() []float64 {
	if len(c.InitState) > 0 {
		out := make([]float64, len(c.InitState))
		copy(out, c.InitState)
		return out
	}
	switch c.System {
	case "unicycle":
		return []float64{1.0, 1.0, 0.0}
	case "double_integrator":
		return []float64{1.0, 0.0}
	default:
		return []float64{0.5, 0.0}
	}
}

// Validate rejects configurations the evaluation layer would refuse
// anyway, with friendlier messages.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %f", c.Duration)
	}
	if c.Costs.ControlWeight < 0 || c.Costs.StateWeight < 0 {
		return fmt.Errorf("config: cost weights must be non-negative")
	}
	if c.Costs.ControlWeight == 0 && c.Costs.StateWeight == 0 {
		return fmt.Errorf("config: at least one cost weight must be positive")
	}
	return nil
}
