// Package collector provides the shared evaluation context that owns the
// per-node scratch data created by residual and cost models.
package collector

import "gonum.org/v1/gonum/mat"

// Collector is the evaluation context for one trajectory node. It carries
// the node's shared state and control slots and owns every data object
// created against it; models bind their data to a collector but never
// retain it themselves.
type Collector struct {
	// X and U are the node slots filled by the evaluation driver before
	// each calc pass. They may be nil until the first node is evaluated
	// (U stays nil at terminal nodes).
	X *mat.VecDense
	U *mat.VecDense
}

// New creates an empty collector for one trajectory node.
func New() *Collector {
	return &Collector{}
}

// SetNode points the shared slots at the current node's state and control.
// u may be nil at a terminal node.
func (c *Collector) SetNode(x, u *mat.VecDense) {
	c.X = x
	c.U = u
}
