package controllers

import "github.com/san-kum/optctl/internal/rollout"

// Constant emits the same control vector at every node. With a nil
// value it reduces to a zero controller of the given dimension.
type Constant struct {
	value rollout.Control
}

func NewConstant(value rollout.Control) *Constant {
	return &Constant{value: value}
}

func NewZero(dim int) *Constant {
	return &Constant{value: make(rollout.Control, dim)}
}

func (c *Constant) Compute(x rollout.State, t float64) rollout.Control {
	return c.value.Clone()
}
