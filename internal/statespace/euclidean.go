package statespace

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Euclidean is a flat vector space: nx == ndx, Diff is subtraction and
// Integrate is addition.
type Euclidean struct {
	nx int
}

// NewEuclidean creates an nx-dimensional Euclidean state space.
func NewEuclidean(nx int) (*Euclidean, error) {
	if nx <= 0 {
		return nil, fmt.Errorf("%w: nx must be positive (got %d)", ErrInvalidDimension, nx)
	}
	return &Euclidean{nx: nx}, nil
}

func (s *Euclidean) NX() int  { return s.nx }
func (s *Euclidean) NDX() int { return s.nx }

func (s *Euclidean) Zero() *mat.VecDense {
	return mat.NewVecDense(s.nx, nil)
}

func (s *Euclidean) Rand() *mat.VecDense {
	v := mat.NewVecDense(s.nx, nil)
	for i := 0; i < s.nx; i++ {
		v.SetVec(i, 2*rand.Float64()-1)
	}
	return v
}

func (s *Euclidean) Diff(x0, x1 mat.Vector, dx *mat.VecDense) error {
	if err := checkDim("x0", x0.Len(), s.nx); err != nil {
		return err
	}
	if err := checkDim("x1", x1.Len(), s.nx); err != nil {
		return err
	}
	if err := checkDim("dx", dx.Len(), s.nx); err != nil {
		return err
	}
	dx.SubVec(x1, x0)
	return nil
}

func (s *Euclidean) Integrate(x, dx mat.Vector, out *mat.VecDense) error {
	if err := checkDim("x", x.Len(), s.nx); err != nil {
		return err
	}
	if err := checkDim("dx", dx.Len(), s.nx); err != nil {
		return err
	}
	if err := checkDim("out", out.Len(), s.nx); err != nil {
		return err
	}
	out.AddVec(x, dx)
	return nil
}
