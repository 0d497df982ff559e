package rollout

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/cost"
)

// Evaluator rolls a controlled system out over a horizon and evaluates a
// cost sum at every node. Running nodes use the full calc path; the
// terminal node uses the control-free one.
type Evaluator struct {
	dyn        Dynamics
	integrator Integrator
	controller Controller
	costs      *cost.Sum
	observers  []Observer
}

func New(dyn Dynamics, integrator Integrator, controller Controller, costs *cost.Sum) (*Evaluator, error) {
	if costs.Space().NX() != dyn.StateDim() {
		return nil, fmt.Errorf("%w: cost state dimension %d, system state dimension %d",
			ErrDimensionMismatch, costs.Space().NX(), dyn.StateDim())
	}
	if costs.NU() != dyn.ControlDim() {
		return nil, fmt.Errorf("%w: cost control dimension %d, system control dimension %d",
			ErrDimensionMismatch, costs.NU(), dyn.ControlDim())
	}
	return &Evaluator{
		dyn:        dyn,
		integrator: integrator,
		controller: controller,
		costs:      costs,
	}, nil
}

func (e *Evaluator) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run simulates from x0 and returns the trajectory with its per-node
// cost breakdown. The cost data lives in a collector owned by this run;
// the cost models themselves are shared and read-only here.
func (e *Evaluator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != e.dyn.StateDim() {
		return nil, fmt.Errorf("%w: x0 has length %d, system state dimension %d",
			ErrDimensionMismatch, len(x0), e.dyn.StateDim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:   make([]State, 0, steps+1),
		Controls: make([]Control, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Costs:    make([]float64, 0, steps+1),
	}

	col := collector.New()
	cd := e.costs.CreateData(col)

	x := x0.Clone()
	t := 0.0

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := e.controller.Compute(x, t)
		if len(u) != e.dyn.ControlDim() {
			return result, fmt.Errorf("%w: controller produced %d controls, system needs %d",
				ErrDimensionMismatch, len(u), e.dyn.ControlDim())
		}

		for _, obs := range e.observers {
			obs.OnStep(x, u, t)
		}

		xv := mat.NewVecDense(len(x), x)
		uv := mat.NewVecDense(len(u), u)
		col.SetNode(xv, uv)

		if err := e.costs.Calc(cd, xv, uv); err != nil {
			return result, &StepError{Step: i, Time: t, Wrapped: err}
		}

		result.States = append(result.States, x.Clone())
		result.Controls = append(result.Controls, u.Clone())
		result.Times = append(result.Times, t)
		result.Costs = append(result.Costs, cd.Value)
		result.TotalCost += cd.Value

		newX := e.integrator.Step(e.dyn, x, u, t, cfg.Dt)
		if cfg.ValidateState && !newX.IsValid() {
			err := &StepError{Step: i, Time: t, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			break
		}

		x = newX
		t += cfg.Dt
	}

	// Terminal node: no control decision, control-dependent penalties
	// are defined to vanish.
	xv := mat.NewVecDense(len(x), x)
	col.SetNode(xv, nil)
	if err := e.costs.CalcTerminal(cd, xv); err != nil {
		return result, &StepError{Step: steps, Time: t, Wrapped: err}
	}

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)
	result.Costs = append(result.Costs, cd.Value)
	result.TotalCost += cd.Value

	return result, nil
}
