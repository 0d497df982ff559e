package residual

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/statespace"
)

// Model is the residual contract the cost aggregation layer dispatches
// over. Implementations are one variant among an open set; the framework
// treats them uniformly through Calc, CalcDiff and CreateData plus the
// static dimension facts NR and NU.
type Model interface {
	// NR is the residual dimension.
	NR() int
	// NU is the control dimension this residual acts on.
	NU() int
	// Space is the state space the residual is defined over.
	Space() statespace.Space

	// Calc evaluates the residual at a running node and writes it into
	// d.R. It fails with ErrInvalidArgument on a dimension mismatch,
	// leaving d untouched.
	Calc(d *Data, x, u mat.Vector) error

	// CalcTerminal evaluates the residual at a control-free node.
	CalcTerminal(d *Data, x mat.Vector) error

	// CalcDiff evaluates the residual Jacobians into d.Rx and d.Ru.
	// Models with constant Jacobians seed them in CreateData instead and
	// leave this a no-op.
	CalcDiff(d *Data, x, u mat.Vector) error

	// CreateData allocates the per-node scratch buffers bound to the
	// given evaluation context. Ownership passes to the caller; the
	// model retains no reference to the returned data.
	CreateData(c *collector.Collector) *Data

	fmt.Stringer
}

// Data holds the per-node scratch buffers of one residual: the value and
// its Jacobians with respect to state tangent and control. It is owned
// and mutated by a single evaluation context.
type Data struct {
	// R is the residual value, overwritten every forward evaluation.
	R *mat.VecDense
	// Rx is the nr x ndx Jacobian with respect to the state tangent.
	Rx *mat.Dense
	// Ru is the nr x nu Jacobian with respect to the control.
	Ru *mat.Dense

	// Shared is the evaluation context this data is bound to.
	Shared *collector.Collector
}

// NewData allocates zeroed scratch buffers sized for m, bound to c.
func NewData(m Model, c *collector.Collector) *Data {
	nr := m.NR()
	return &Data{
		R:      mat.NewVecDense(nr, nil),
		Rx:     mat.NewDense(nr, m.Space().NDX(), nil),
		Ru:     mat.NewDense(nr, m.NU(), nil),
		Shared: c,
	}
}

func dimError(name string, got, want int) error {
	return fmt.Errorf("%w: %s has wrong dimension (got %d, it should be %d)",
		ErrInvalidArgument, name, got, want)
}
