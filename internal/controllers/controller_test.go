package controllers

import (
	"testing"

	"github.com/san-kum/optctl/internal/rollout"
)

func TestZero(t *testing.T) {
	ctrl := NewZero(2)
	u := ctrl.Compute(rollout.State{1.0, 2.0}, 0.0)

	if len(u) != 2 {
		t.Errorf("expected 2 controls, got %d", len(u))
	}
	for i, v := range u {
		if v != 0 {
			t.Errorf("control[%d] should be 0, got %f", i, v)
		}
	}
}

func TestConstant(t *testing.T) {
	ctrl := NewConstant(rollout.Control{0.5, -0.5})

	u := ctrl.Compute(rollout.State{0}, 0.0)
	if u[0] != 0.5 || u[1] != -0.5 {
		t.Errorf("expected {0.5, -0.5}, got %v", u)
	}

	u[0] = 99
	u2 := ctrl.Compute(rollout.State{0}, 1.0)
	if u2[0] != 0.5 {
		t.Error("Compute should not alias previous outputs")
	}
}

func TestPID(t *testing.T) {
	ctrl := NewPID(10.0, 0.1, 5.0, 0.0, 1)
	u := ctrl.Compute(rollout.State{1.0, 0.0}, 0.0)
	if len(u) != 1 {
		t.Fatalf("expected 1 control, got %d", len(u))
	}
	if u[0] >= 0 {
		t.Error("PID should output negative control for positive error")
	}
}

func TestPIDPadding(t *testing.T) {
	ctrl := NewPID(10.0, 0, 0, 0.0, 2)
	u := ctrl.Compute(rollout.State{1.0, 0.0}, 0.0)

	if len(u) != 2 {
		t.Fatalf("expected 2 controls, got %d", len(u))
	}
	if u[1] != 0 {
		t.Errorf("padded control should be 0, got %f", u[1])
	}
}
