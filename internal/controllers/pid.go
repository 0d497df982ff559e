package controllers

import "github.com/san-kum/optctl/internal/rollout"

// PID is a single-input PID controller on the first state component,
// padded with zeros up to the system's control dimension.
type PID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64
	dim      int
	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPID(kp, ki, kd, target float64, dim int) *PID {
	return &PID{
		Kp:     kp,
		Ki:     ki,
		Kd:     kd,
		Target: target,
		dim:    dim,
		first:  true,
	}
}

func (p *PID) Compute(x rollout.State, t float64) rollout.Control {
	u := make(rollout.Control, p.dim)
	if len(x) == 0 || p.dim == 0 {
		return u
	}

	err := p.Target - x[0]

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		u[0] = p.Kp * err
		return u
	}

	dt := t - p.prevT
	if dt > 0 {
		p.integral += err * dt
		derivative := (err - p.prevErr) / dt

		u[0] = p.Kp*err + p.Ki*p.integral + p.Kd*derivative

		p.prevErr = err
		p.prevT = t
		return u
	}

	u[0] = p.Kp * err
	return u
}
