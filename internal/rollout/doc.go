// Package rollout drives controlled trajectories and evaluates residual
// costs at every node.
//
// The package defines the simulation-side primitives:
//
//   - [State], [Control]: raw trajectory buffers
//   - [Dynamics]: ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrators (Euler, RK4)
//   - [Controller]: feedback controllers producing node controls
//   - [Evaluator]: rolls the system out and evaluates a cost sum at each
//     running node plus the control-free cost at the terminal node
//
// # Thread Safety
//
// Evaluator instances are NOT thread-safe; run concurrent evaluations on
// separate Evaluators with separate cost data.
package rollout
