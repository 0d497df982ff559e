package statespace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidDimension indicates a vector whose length does not match the
// space it is used with.
var ErrInvalidDimension = errors.New("statespace: invalid dimension")

// Space is an abstract state space. NX is the dimension of a state point,
// NDX the dimension of its tangent (local linearization). Diff and
// Integrate move between points and tangent vectors.
type Space interface {
	NX() int
	NDX() int

	// Zero returns the neutral state point.
	Zero() *mat.VecDense

	// Rand returns a state point with entries drawn uniformly from [-1, 1).
	Rand() *mat.VecDense

	// Diff writes the tangent vector from x0 to x1 into dx.
	Diff(x0, x1 mat.Vector, dx *mat.VecDense) error

	// Integrate writes the point reached from x along dx into out.
	Integrate(x, dx mat.Vector, out *mat.VecDense) error
}

func checkDim(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has wrong dimension (got %d, it should be %d)",
			ErrInvalidDimension, name, got, want)
	}
	return nil
}
