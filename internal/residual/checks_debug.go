//go:build debug

package residual

import "gonum.org/v1/gonum/mat"

const debugChecks = true

// assertIdentity panics if m is not the n x n identity. Compiled only
// into debug builds; release builds keep derivative evaluation a true
// no-op for constant-Jacobian residuals.
func assertIdentity(m *mat.Dense, n int) {
	rows, cols := m.Dims()
	if rows != n || cols != n {
		panic("residual: Ru has wrong shape")
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if m.At(i, j) != want {
				panic("residual: Ru has wrong value")
			}
		}
	}
}
