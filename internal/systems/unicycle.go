package systems

import (
	"math"

	"github.com/san-kum/optctl/internal/rollout"
)

// Unicycle is a kinematic unicycle: state (x, y, heading), control
// (forward velocity, turn rate).
type Unicycle struct{}

func NewUnicycle() *Unicycle {
	return &Unicycle{}
}

func (Unicycle) StateDim() int   { return 3 }
func (Unicycle) ControlDim() int { return 2 }

func (Unicycle) Derivative(x rollout.State, u rollout.Control, t float64) rollout.State {
	v := u[0]
	w := u[1]
	return rollout.State{
		v * math.Cos(x[2]),
		v * math.Sin(x[2]),
		w,
	}
}
