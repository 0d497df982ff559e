//go:build !debug

package residual

import "gonum.org/v1/gonum/mat"

const debugChecks = false

func assertIdentity(m *mat.Dense, n int) {}
