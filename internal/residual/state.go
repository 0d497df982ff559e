package residual

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/statespace"
)

// StateResidual penalizes deviation of the state from a reference point:
// r(x, u) = diff(xref, x), the tangent vector from the reference to the
// current state. It does not depend on the control, so the terminal
// evaluation computes the same value as the running one.
type StateResidual struct {
	space statespace.Space
	nu    int
	xref  *mat.VecDense
}

// NewStateResidual builds the residual against xref with the control
// dimension defaulted to the state's tangent dimension.
func NewStateResidual(space statespace.Space, xref mat.Vector) (*StateResidual, error) {
	return NewStateResidualDim(space, xref, space.NDX())
}

// NewStateResidualDim builds the residual against xref for a node whose
// control dimension is nu.
func NewStateResidualDim(space statespace.Space, xref mat.Vector, nu int) (*StateResidual, error) {
	if xref.Len() != space.NX() {
		return nil, dimError("xref", xref.Len(), space.NX())
	}
	if nu < 0 {
		return nil, fmt.Errorf("%w: nu must be non-negative (got %d)", ErrInvalidArgument, nu)
	}
	r := &StateResidual{
		space: space,
		nu:    nu,
		xref:  mat.NewVecDense(xref.Len(), nil),
	}
	r.xref.CopyVec(xref)
	return r, nil
}

func (r *StateResidual) NR() int { return r.space.NDX() }
func (r *StateResidual) NU() int { return r.nu }

func (r *StateResidual) Space() statespace.Space { return r.space }

func (r *StateResidual) Calc(d *Data, x, u mat.Vector) error {
	if x.Len() != r.space.NX() {
		return dimError("x", x.Len(), r.space.NX())
	}
	return r.space.Diff(r.xref, x, d.R)
}

func (r *StateResidual) CalcTerminal(d *Data, x mat.Vector) error {
	if x.Len() != r.space.NX() {
		return dimError("x", x.Len(), r.space.NX())
	}
	return r.space.Diff(r.xref, x, d.R)
}

// CalcDiff writes the state Jacobian. For the flat spaces supported here
// the difference map has identity Jacobian with respect to its second
// argument.
func (r *StateResidual) CalcDiff(d *Data, x, u mat.Vector) error {
	if x.Len() != r.space.NX() {
		return dimError("x", x.Len(), r.space.NX())
	}
	ndx := r.space.NDX()
	d.Rx.Zero()
	for i := 0; i < ndx; i++ {
		d.Rx.Set(i, i, 1)
	}
	return nil
}

func (r *StateResidual) CreateData(c *collector.Collector) *Data {
	return NewData(r, c)
}

// Reference returns a copy of the state set-point.
func (r *StateResidual) Reference() *mat.VecDense {
	return mat.VecDenseCopyOf(r.xref)
}

// SetReference replaces the state set-point. On a dimension mismatch the
// stored reference is left unmodified.
func (r *StateResidual) SetReference(xref mat.Vector) error {
	if xref.Len() != r.space.NX() {
		return fmt.Errorf("%w: the state reference has wrong dimension (got %d, it should be %d)",
			ErrInvalidArgument, xref.Len(), r.space.NX())
	}
	r.xref.CopyVec(xref)
	return nil
}

func (r *StateResidual) String() string {
	return fmt.Sprintf("StateResidual{ndx=%d, nu=%d}", r.space.NDX(), r.nu)
}
