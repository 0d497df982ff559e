package cost

import "gonum.org/v1/gonum/mat"

// Activation maps a residual vector to the scalar penalty the optimizer
// minimizes.
type Activation interface {
	// Calc returns the penalty for residual r.
	Calc(r mat.Vector) float64
	// Grad writes the gradient of the penalty with respect to r into ar.
	Grad(ar *mat.VecDense, r mat.Vector)
}

// Quad is the quadratic activation 0.5 * ||r||^2.
type Quad struct{}

func (Quad) Calc(r mat.Vector) float64 {
	return 0.5 * mat.Dot(r, r)
}

func (Quad) Grad(ar *mat.VecDense, r mat.Vector) {
	ar.CopyVec(r)
}
