// Package cost aggregates weighted residual penalties into the total
// cost of a trajectory node.
//
//   - [Activation]: maps a residual vector to a scalar penalty
//   - [Quad]: 0.5 * ||r||^2 activation
//   - [Cost]: weight x activation applied to one residual model
//   - [Sum]: ordered collection of named costs sharing one state space
//     and control dimension; lays out the stacked residual vector and
//     Jacobians across all attached items
package cost
