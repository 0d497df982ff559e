package systems

import "github.com/san-kum/optctl/internal/rollout"

// DoubleIntegrator is a point mass on a line: state (pos, vel), control
// (accel).
type DoubleIntegrator struct {
	Mass float64
}

func NewDoubleIntegrator() *DoubleIntegrator {
	return &DoubleIntegrator{Mass: 1.0}
}

func (d *DoubleIntegrator) StateDim() int   { return 2 }
func (d *DoubleIntegrator) ControlDim() int { return 1 }

func (d *DoubleIntegrator) Derivative(x rollout.State, u rollout.Control, t float64) rollout.State {
	return rollout.State{x[1], u[0] / d.Mass}
}
