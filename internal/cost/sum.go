package cost

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/residual"
	"github.com/san-kum/optctl/internal/statespace"
)

// Sum aggregates named cost terms attached to one trajectory node. Every
// item must share the sum's state space and control dimension; the sum
// uses the items' residual dimensions to lay out the stacked residual
// vector and Jacobians.
type Sum struct {
	space statespace.Space
	nu    int
	items []sumItem
	index map[string]int
	nr    int
}

type sumItem struct {
	name string
	cost *Cost
}

// SumData holds the per-node buffers of a cost sum: one Data per item in
// insertion order, the accumulated value and gradients, and the stacked
// residual layout.
type SumData struct {
	Items []*Data
	Value float64
	Lx    *mat.VecDense
	Lu    *mat.VecDense

	// R, Rx and Ru stack the items' residual buffers in insertion order.
	R  *mat.VecDense
	Rx *mat.Dense
	Ru *mat.Dense
}

// NewSum creates an empty cost sum over space for nodes with nu controls.
func NewSum(space statespace.Space, nu int) (*Sum, error) {
	if nu <= 0 {
		return nil, fmt.Errorf("%w: nu must be positive (got %d)", residual.ErrInvalidArgument, nu)
	}
	return &Sum{
		space: space,
		nu:    nu,
		index: make(map[string]int),
	}, nil
}

func (s *Sum) NU() int { return s.nu }

// Space is the state space shared by every attached item.
func (s *Sum) Space() statespace.Space { return s.space }

// NR is the stacked residual dimension across all items.
func (s *Sum) NR() int { return s.nr }

// Len is the number of attached cost terms.
func (s *Sum) Len() int { return len(s.items) }

// Add attaches a named cost term. It fails if the name is taken or the
// term disagrees with the sum's state space or control dimension.
func (s *Sum) Add(name string, c *Cost) error {
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: cost %q already registered", residual.ErrInvalidArgument, name)
	}
	m := c.Model()
	if m.Space().NDX() != s.space.NDX() {
		return fmt.Errorf("%w: cost %q has wrong state tangent dimension (got %d, it should be %d)",
			residual.ErrInvalidArgument, name, m.Space().NDX(), s.space.NDX())
	}
	if m.NU() != s.nu {
		return fmt.Errorf("%w: cost %q has wrong control dimension (got %d, it should be %d)",
			residual.ErrInvalidArgument, name, m.NU(), s.nu)
	}
	s.index[name] = len(s.items)
	s.items = append(s.items, sumItem{name: name, cost: c})
	s.nr += m.NR()
	return nil
}

// Names returns the item names in insertion order.
func (s *Sum) Names() []string {
	names := make([]string, len(s.items))
	for i, it := range s.items {
		names[i] = it.name
	}
	return names
}

// CreateData allocates per-item scratch plus the stacked layout, all
// bound to col.
func (s *Sum) CreateData(col *collector.Collector) *SumData {
	d := &SumData{
		Items: make([]*Data, len(s.items)),
		Lx:    mat.NewVecDense(s.space.NDX(), nil),
		Lu:    mat.NewVecDense(s.nu, nil),
		R:     mat.NewVecDense(s.nr, nil),
		Rx:    mat.NewDense(s.nr, s.space.NDX(), nil),
		Ru:    mat.NewDense(s.nr, s.nu, nil),
	}
	for i, it := range s.items {
		d.Items[i] = it.cost.CreateData(col)
	}
	return d
}

// Calc evaluates every item at a running node, accumulating the total
// value and stacking the residuals.
func (s *Sum) Calc(d *SumData, x, u mat.Vector) error {
	d.Value = 0
	offset := 0
	for i, it := range s.items {
		di := d.Items[i]
		if err := it.cost.Calc(di, x, u); err != nil {
			return fmt.Errorf("cost %q: %w", it.name, err)
		}
		d.Value += di.Value
		nr := it.cost.Model().NR()
		for j := 0; j < nr; j++ {
			d.R.SetVec(offset+j, di.Residual.R.AtVec(j))
		}
		offset += nr
	}
	return nil
}

// CalcTerminal evaluates every item through its control-free path.
func (s *Sum) CalcTerminal(d *SumData, x mat.Vector) error {
	d.Value = 0
	offset := 0
	for i, it := range s.items {
		di := d.Items[i]
		if err := it.cost.CalcTerminal(di, x); err != nil {
			return fmt.Errorf("cost %q: %w", it.name, err)
		}
		d.Value += di.Value
		nr := it.cost.Model().NR()
		for j := 0; j < nr; j++ {
			d.R.SetVec(offset+j, di.Residual.R.AtVec(j))
		}
		offset += nr
	}
	return nil
}

// CalcDiff accumulates the gradients of every item and stacks the
// residual Jacobians.
func (s *Sum) CalcDiff(d *SumData, x, u mat.Vector) error {
	d.Lx.Zero()
	d.Lu.Zero()
	offset := 0
	for i, it := range s.items {
		di := d.Items[i]
		if err := it.cost.CalcDiff(di, x, u); err != nil {
			return fmt.Errorf("cost %q: %w", it.name, err)
		}
		d.Lx.AddVec(d.Lx, di.Lx)
		d.Lu.AddVec(d.Lu, di.Lu)
		nr := it.cost.Model().NR()
		for j := 0; j < nr; j++ {
			for k := 0; k < s.space.NDX(); k++ {
				d.Rx.Set(offset+j, k, di.Residual.Rx.At(j, k))
			}
			for k := 0; k < s.nu; k++ {
				d.Ru.Set(offset+j, k, di.Residual.Ru.At(j, k))
			}
		}
		offset += nr
	}
	return nil
}

// CalcDiffTerminal accumulates the state gradients at a control-free
// node; the control gradient is zero.
func (s *Sum) CalcDiffTerminal(d *SumData, x mat.Vector) error {
	d.Lx.Zero()
	d.Lu.Zero()
	for i, it := range s.items {
		di := d.Items[i]
		if err := it.cost.CalcDiffTerminal(di, x); err != nil {
			return fmt.Errorf("cost %q: %w", it.name, err)
		}
		d.Lx.AddVec(d.Lx, di.Lx)
	}
	return nil
}
