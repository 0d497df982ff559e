package residual

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/statespace"
)

// ControlResidual penalizes deviation of the control from a reference
// set-point: r(x, u) = u - uref. The residual is affine in u with unit
// slope, so its control Jacobian is the identity and is seeded once at
// data creation rather than recomputed.
type ControlResidual struct {
	space statespace.Space
	nu    int
	uref  *mat.VecDense
}

// NewControlResidual builds the residual from an explicit reference
// vector; the control dimension is the reference length.
func NewControlResidual(space statespace.Space, uref mat.Vector) (*ControlResidual, error) {
	if uref.Len() == 0 {
		return nil, fmt.Errorf("%w: it seems to be an autonomous system, if so, don't add this residual",
			ErrInvalidArgument)
	}
	r := &ControlResidual{
		space: space,
		nu:    uref.Len(),
		uref:  mat.NewVecDense(uref.Len(), nil),
	}
	r.uref.CopyVec(uref)
	return r, nil
}

// NewControlResidualDim builds the residual from an explicit control
// dimension with a zero reference.
func NewControlResidualDim(space statespace.Space, nu int) (*ControlResidual, error) {
	if nu <= 0 {
		return nil, fmt.Errorf("%w: it seems to be an autonomous system, if so, don't add this residual",
			ErrInvalidArgument)
	}
	return &ControlResidual{
		space: space,
		nu:    nu,
		uref:  mat.NewVecDense(nu, nil),
	}, nil
}

// NewControlResidualState builds the residual with the control dimension
// defaulted to the state's tangent dimension and a zero reference.
func NewControlResidualState(space statespace.Space) (*ControlResidual, error) {
	return &ControlResidual{
		space: space,
		nu:    space.NDX(),
		uref:  mat.NewVecDense(space.NDX(), nil),
	}, nil
}

func (r *ControlResidual) NR() int { return r.nu }
func (r *ControlResidual) NU() int { return r.nu }

func (r *ControlResidual) Space() statespace.Space { return r.space }

func (r *ControlResidual) Calc(d *Data, x, u mat.Vector) error {
	if u.Len() != r.nu {
		return dimError("u", u.Len(), r.nu)
	}
	d.R.SubVec(u, r.uref)
	return nil
}

// CalcTerminal defines the control-deviation penalty to vanish at a node
// with no control decision.
func (r *ControlResidual) CalcTerminal(d *Data, x mat.Vector) error {
	d.R.Zero()
	return nil
}

// CalcDiff is a checked no-op: Ru holds constant values seeded in
// CreateData.
func (r *ControlResidual) CalcDiff(d *Data, x, u mat.Vector) error {
	if debugChecks {
		assertIdentity(d.Ru, r.nu)
	}
	return nil
}

func (r *ControlResidual) CreateData(c *collector.Collector) *Data {
	d := NewData(r, c)
	for i := 0; i < r.nu; i++ {
		d.Ru.Set(i, i, 1)
	}
	return d
}

// Reference returns a copy of the control set-point.
func (r *ControlResidual) Reference() *mat.VecDense {
	return mat.VecDenseCopyOf(r.uref)
}

// SetReference replaces the control set-point. On a dimension mismatch
// the stored reference is left unmodified.
func (r *ControlResidual) SetReference(uref mat.Vector) error {
	if uref.Len() != r.nu {
		return fmt.Errorf("%w: the control reference has wrong dimension (got %d, it should be %d)",
			ErrInvalidArgument, uref.Len(), r.nu)
	}
	r.uref.CopyVec(uref)
	return nil
}

func (r *ControlResidual) String() string {
	return fmt.Sprintf("ControlResidual{nu=%d}", r.nu)
}
