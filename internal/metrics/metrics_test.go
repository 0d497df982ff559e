package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/optctl/internal/rollout"
)

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()

	m.OnStep(rollout.State{0}, rollout.Control{1.0}, 0)
	m.OnStep(rollout.State{0}, rollout.Control{-3.0}, 0.1)

	if math.Abs(m.Value()-2.0) > 1e-12 {
		t.Errorf("expected mean effort 2.0, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestStability(t *testing.T) {
	m := NewStability(10.0)

	m.OnStep(rollout.State{1, 1}, nil, 0)
	m.OnStep(rollout.State{100, 0}, nil, 0.1)

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected stability 0.5, got %f", m.Value())
	}
}

func TestStabilityEmpty(t *testing.T) {
	if v := NewStability(1).Value(); v != 1.0 {
		t.Errorf("no samples should score 1.0, got %f", v)
	}
}
