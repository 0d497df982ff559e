// Package residual defines the residual-model contract used by the cost
// layer and two concrete residuals over it.
//
// A residual is a vector-valued function r(x, u) of a trajectory node's
// state and control; the optimizer penalizes its magnitude. The package
// splits each residual into a [Model] (immutable configuration, shared
// across nodes) and a [Data] (per-node scratch buffers owned by the
// node's evaluation context):
//
//   - [Model]: calc/calc-diff/create-data contract plus dimension facts
//   - [ControlResidual]: r(x, u) = u - uref, constant identity Jacobian
//   - [StateResidual]: r(x, u) = diff(xref, x) on the state space
//
// # Thread Safety
//
// Models are safe for concurrent read-only use by many Data instances.
// SetReference must not race with Calc/CalcDiff; no internal locking is
// provided. Each Data belongs to exactly one evaluation context.
package residual
