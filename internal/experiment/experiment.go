// Package experiment assembles a cost evaluation run from configuration:
// system, integrator, controller and the residual penalties attached to
// every trajectory node.
package experiment

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/config"
	"github.com/san-kum/optctl/internal/controllers"
	"github.com/san-kum/optctl/internal/cost"
	"github.com/san-kum/optctl/internal/metrics"
	"github.com/san-kum/optctl/internal/residual"
	"github.com/san-kum/optctl/internal/rollout"
	"github.com/san-kum/optctl/internal/statespace"
	"github.com/san-kum/optctl/internal/systems"
)

// Run is a fully wired evaluation: dynamics, controller and cost sum,
// plus summary metrics observing the rollout.
type Run struct {
	Config    *config.Config
	Dynamics  rollout.Dynamics
	Evaluator *rollout.Evaluator
	Metrics   []metrics.Metric
}

// Build wires a run from cfg. Unknown names and dimension conflicts are
// reported before anything executes.
func Build(cfg *config.Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dyn, err := buildSystem(cfg.System)
	if err != nil {
		return nil, err
	}

	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	ctrl, err := buildController(cfg, dyn.ControlDim())
	if err != nil {
		return nil, err
	}

	costs, err := buildCosts(cfg, dyn)
	if err != nil {
		return nil, err
	}

	ev, err := rollout.New(dyn, integ, ctrl, costs)
	if err != nil {
		return nil, err
	}

	ms := []metrics.Metric{
		metrics.NewControlEffort(),
		metrics.NewStability(1e3),
	}
	for _, m := range ms {
		ev.AddObserver(m)
	}

	return &Run{Config: cfg, Dynamics: dyn, Evaluator: ev, Metrics: ms}, nil
}

// Execute rolls the run out and returns the costed trajectory.
func (r *Run) Execute(ctx context.Context) (*rollout.Result, error) {
	for _, m := range r.Metrics {
		m.Reset()
	}
	rcfg := rollout.Config{
		Dt:            r.Config.Dt,
		Duration:      r.Config.Duration,
		Seed:          r.Config.Seed,
		ValidateState: true,
	}
	return r.Evaluator.Run(ctx, r.Config.GetInitState(), rcfg)
}

func buildSystem(name string) (rollout.Dynamics, error) {
	switch name {
	case "pendulum":
		return systems.NewPendulum(), nil
	case "double_integrator":
		return systems.NewDoubleIntegrator(), nil
	case "unicycle":
		return systems.NewUnicycle(), nil
	default:
		return nil, fmt.Errorf("unknown system %q", name)
	}
}

func buildIntegrator(name string) (rollout.Integrator, error) {
	switch name {
	case "", "rk4":
		return rollout.NewRK4(), nil
	case "euler":
		return rollout.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func buildController(cfg *config.Config, nu int) (rollout.Controller, error) {
	switch cfg.Controller {
	case "", "zero":
		return controllers.NewZero(nu), nil
	case "constant":
		value := cfg.Controllers.Constant
		if len(value) == 0 {
			value = make([]float64, nu)
		}
		if len(value) != nu {
			return nil, fmt.Errorf("constant controller has %d entries, system needs %d", len(value), nu)
		}
		return controllers.NewConstant(rollout.Control(value)), nil
	case "pid":
		p := cfg.Controllers
		return controllers.NewPID(p.Kp, p.Ki, p.Kd, p.Target, nu), nil
	default:
		return nil, fmt.Errorf("unknown controller %q", cfg.Controller)
	}
}

func buildCosts(cfg *config.Config, dyn rollout.Dynamics) (*cost.Sum, error) {
	space, err := statespace.NewEuclidean(dyn.StateDim())
	if err != nil {
		return nil, err
	}

	sum, err := cost.NewSum(space, dyn.ControlDim())
	if err != nil {
		return nil, err
	}

	if w := cfg.Costs.ControlWeight; w > 0 {
		uref := cfg.Costs.URef
		if len(uref) == 0 {
			uref = make([]float64, dyn.ControlDim())
		}
		if len(uref) != dyn.ControlDim() {
			return nil, fmt.Errorf("uref has %d entries, system needs %d", len(uref), dyn.ControlDim())
		}
		model, err := residual.NewControlResidual(space, mat.NewVecDense(len(uref), uref))
		if err != nil {
			return nil, err
		}
		c, err := cost.New(model, cost.Quad{}, w)
		if err != nil {
			return nil, err
		}
		if err := sum.Add("ctrl_reg", c); err != nil {
			return nil, err
		}
	}

	if w := cfg.Costs.StateWeight; w > 0 {
		xref := cfg.Costs.XRef
		if len(xref) == 0 {
			xref = make([]float64, dyn.StateDim())
		}
		if len(xref) != dyn.StateDim() {
			return nil, fmt.Errorf("xref has %d entries, system needs %d", len(xref), dyn.StateDim())
		}
		model, err := residual.NewStateResidualDim(space, mat.NewVecDense(len(xref), xref), dyn.ControlDim())
		if err != nil {
			return nil, err
		}
		c, err := cost.New(model, cost.Quad{}, w)
		if err != nil {
			return nil, err
		}
		if err := sum.Add("state_reg", c); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
