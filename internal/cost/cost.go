package cost

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/residual"
)

// Cost is one weighted penalty term: weight * activation(r(x, u)).
type Cost struct {
	model      residual.Model
	activation Activation
	weight     float64
}

// Data holds the per-node buffers of one cost term: the residual scratch
// it chains through, the activation gradient and the cost gradients.
type Data struct {
	Residual *residual.Data
	Ar       *mat.VecDense
	Value    float64
	Lx       *mat.VecDense
	Lu       *mat.VecDense
}

// New wraps a residual model into a weighted cost term.
func New(model residual.Model, activation Activation, weight float64) (*Cost, error) {
	if weight < 0 {
		return nil, fmt.Errorf("%w: cost weight must be non-negative (got %g)",
			residual.ErrInvalidArgument, weight)
	}
	return &Cost{model: model, activation: activation, weight: weight}, nil
}

func (c *Cost) Model() residual.Model { return c.model }
func (c *Cost) Weight() float64       { return c.weight }

// CreateData allocates the cost and residual scratch bound to c.
func (c *Cost) CreateData(col *collector.Collector) *Data {
	return &Data{
		Residual: c.model.CreateData(col),
		Ar:       mat.NewVecDense(c.model.NR(), nil),
		Lx:       mat.NewVecDense(c.model.Space().NDX(), nil),
		Lu:       mat.NewVecDense(c.model.NU(), nil),
	}
}

// Calc evaluates the cost value at a running node.
func (c *Cost) Calc(d *Data, x, u mat.Vector) error {
	if err := c.model.Calc(d.Residual, x, u); err != nil {
		return err
	}
	d.Value = c.weight * c.activation.Calc(d.Residual.R)
	return nil
}

// CalcTerminal evaluates the cost value at a control-free node.
func (c *Cost) CalcTerminal(d *Data, x mat.Vector) error {
	if err := c.model.CalcTerminal(d.Residual, x); err != nil {
		return err
	}
	d.Value = c.weight * c.activation.Calc(d.Residual.R)
	return nil
}

// CalcDiff evaluates the cost gradients Lx = w * Rx' * Ar and
// Lu = w * Ru' * Ar. Calc must have run on d first.
func (c *Cost) CalcDiff(d *Data, x, u mat.Vector) error {
	if err := c.model.CalcDiff(d.Residual, x, u); err != nil {
		return err
	}
	c.activation.Grad(d.Ar, d.Residual.R)
	d.Lx.MulVec(d.Residual.Rx.T(), d.Ar)
	d.Lx.ScaleVec(c.weight, d.Lx)
	d.Lu.MulVec(d.Residual.Ru.T(), d.Ar)
	d.Lu.ScaleVec(c.weight, d.Lu)
	return nil
}

// CalcDiffTerminal evaluates the state gradient at a control-free node;
// the control gradient is zeroed. The residual's CalcDiff ignores the
// control argument for the models in this package, so nil is passed.
func (c *Cost) CalcDiffTerminal(d *Data, x mat.Vector) error {
	if err := c.model.CalcDiff(d.Residual, x, nil); err != nil {
		return err
	}
	c.activation.Grad(d.Ar, d.Residual.R)
	d.Lx.MulVec(d.Residual.Rx.T(), d.Ar)
	d.Lx.ScaleVec(c.weight, d.Lx)
	d.Lu.Zero()
	return nil
}
