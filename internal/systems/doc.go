// Package systems provides the controlled dynamics rolled out by the
// evaluator: a double integrator, a damped pendulum and a kinematic
// unicycle.
package systems
