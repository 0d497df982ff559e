package cost

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/residual"
	"github.com/san-kum/optctl/internal/statespace"
)

func TestQuadActivation(t *testing.T) {
	r := mat.NewVecDense(2, []float64{3, 4})

	if v := (Quad{}).Calc(r); math.Abs(v-12.5) > 1e-12 {
		t.Errorf("expected 0.5*25 = 12.5, got %f", v)
	}

	ar := mat.NewVecDense(2, nil)
	(Quad{}).Grad(ar, r)
	if !mat.Equal(ar, r) {
		t.Error("quadratic gradient should equal the residual")
	}
}

func TestCostCalc(t *testing.T) {
	space, _ := statespace.NewEuclidean(2)
	model, _ := residual.NewControlResidual(space, mat.NewVecDense(2, []float64{1, 2}))

	c, err := New(model, Quad{}, 2.0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d := c.CreateData(collector.New())

	x := space.Zero()
	u := mat.NewVecDense(2, []float64{1.5, 1.5})

	if err := c.Calc(d, x, u); err != nil {
		t.Fatalf("Calc failed: %v", err)
	}

	// r = [0.5, -0.5], 0.5*||r||^2 = 0.25, weighted by 2.
	if math.Abs(d.Value-0.5) > 1e-12 {
		t.Errorf("expected value 0.5, got %f", d.Value)
	}
}

func TestCostCalcDiff(t *testing.T) {
	space, _ := statespace.NewEuclidean(2)
	model, _ := residual.NewControlResidual(space, mat.NewVecDense(2, []float64{1, 2}))
	c, _ := New(model, Quad{}, 3.0)
	d := c.CreateData(collector.New())

	x := space.Zero()
	u := mat.NewVecDense(2, []float64{1.5, 1.5})

	if err := c.Calc(d, x, u); err != nil {
		t.Fatalf("Calc failed: %v", err)
	}
	if err := c.CalcDiff(d, x, u); err != nil {
		t.Fatalf("CalcDiff failed: %v", err)
	}

	// Ru is identity, so Lu = w * r.
	want := []float64{3 * 0.5, 3 * -0.5}
	for i, w := range want {
		if math.Abs(d.Lu.AtVec(i)-w) > 1e-12 {
			t.Errorf("Lu[%d] = %f, expected %f", i, d.Lu.AtVec(i), w)
		}
	}
	for i := 0; i < 2; i++ {
		if d.Lx.AtVec(i) != 0 {
			t.Errorf("control cost should have zero state gradient, Lx[%d] = %f", i, d.Lx.AtVec(i))
		}
	}
}

func TestCostTerminal(t *testing.T) {
	space, _ := statespace.NewEuclidean(2)
	model, _ := residual.NewControlResidual(space, mat.NewVecDense(2, []float64{1, 2}))
	c, _ := New(model, Quad{}, 2.0)
	d := c.CreateData(collector.New())

	if err := c.CalcTerminal(d, space.Rand()); err != nil {
		t.Fatalf("CalcTerminal failed: %v", err)
	}
	if d.Value != 0 {
		t.Errorf("terminal control cost should vanish, got %f", d.Value)
	}

	if err := c.CalcDiffTerminal(d, space.Zero()); err != nil {
		t.Fatalf("CalcDiffTerminal failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if d.Lu.AtVec(i) != 0 {
			t.Errorf("terminal Lu[%d] should be 0, got %f", i, d.Lu.AtVec(i))
		}
	}
}

func TestCostNegativeWeight(t *testing.T) {
	space, _ := statespace.NewEuclidean(1)
	model, _ := residual.NewControlResidualDim(space, 1)

	if _, err := New(model, Quad{}, -1); !errors.Is(err, residual.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
