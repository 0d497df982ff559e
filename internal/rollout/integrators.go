package rollout

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn Dynamics, x State, u Control, t float64, dt float64) State {
	dx := dyn.Derivative(x, u, t)
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

type RK4 struct {
	scratch State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn Dynamics, x State, u Control, t, dt float64) State {
	n := len(x)
	if len(r.scratch) != n {
		r.scratch = make(State, n)
	}

	k1 := dyn.Derivative(x, u, t)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := dyn.Derivative(r.scratch, u, t+dt*0.5)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := dyn.Derivative(r.scratch, u, t+dt*0.5)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*k3[i]
	}
	k4 := dyn.Derivative(r.scratch, u, t+dt)

	result := make(State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return result
}
