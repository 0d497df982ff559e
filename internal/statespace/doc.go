// Package statespace defines the state representation consumed by the
// residual and cost layers.
//
// A [Space] describes a state manifold through its point dimension (nx)
// and tangent dimension (ndx), plus the integrate/difference pair that
// moves between points and tangent vectors:
//
//   - [Space]: abstract state space (nx, ndx, Zero, Rand, Diff, Integrate)
//   - [Euclidean]: flat vector space where nx == ndx and Diff/Integrate
//     reduce to plain subtraction/addition
//
// Residual models only query the tangent dimension (as a default control
// dimension) and call Diff; they never inspect the point representation.
package statespace
