package residual

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/optctl/internal/collector"
	"github.com/san-kum/optctl/internal/statespace"
)

// The contract every residual variant must satisfy so the cost layer can
// dispatch over it uniformly.
var _ = Describe("Model contract", func() {
	var space *statespace.Euclidean

	BeforeEach(func() {
		var err error
		space, err = statespace.NewEuclidean(3)
		Expect(err).NotTo(HaveOccurred())
	})

	models := func() map[string]func() Model {
		return map[string]func() Model{
			"ControlResidual": func() Model {
				m, err := NewControlResidual(space, mat.NewVecDense(3, []float64{0.1, 0.2, 0.3}))
				Expect(err).NotTo(HaveOccurred())
				return m
			},
			"StateResidual": func() Model {
				m, err := NewStateResidual(space, mat.NewVecDense(3, []float64{1, 2, 3}))
				Expect(err).NotTo(HaveOccurred())
				return m
			},
		}
	}

	It("creates data with buffers shaped by the dimension facts", func() {
		for name, build := range models() {
			m := build()
			c := collector.New()
			d := m.CreateData(c)

			Expect(d.R.Len()).To(Equal(m.NR()), name)

			rows, cols := d.Ru.Dims()
			Expect(rows).To(Equal(m.NR()), name)
			Expect(cols).To(Equal(m.NU()), name)

			rows, cols = d.Rx.Dims()
			Expect(rows).To(Equal(m.NR()), name)
			Expect(cols).To(Equal(m.Space().NDX()), name)

			Expect(d.Shared).To(BeIdenticalTo(c), name)
		}
	})

	It("backs many data objects with one configuration", func() {
		for name, build := range models() {
			m := build()
			d1 := m.CreateData(collector.New())
			d2 := m.CreateData(collector.New())

			x := space.Rand()
			u := mat.NewVecDense(m.NU(), nil)

			Expect(m.Calc(d1, x, u)).To(Succeed(), name)
			Expect(m.Calc(d2, x, u)).To(Succeed(), name)
			Expect(mat.Equal(d1.R, d2.R)).To(BeTrue(), name)
		}
	})

	It("evaluates derivatives after a forward pass", func() {
		for name, build := range models() {
			m := build()
			d := m.CreateData(collector.New())

			x := space.Rand()
			u := mat.NewVecDense(m.NU(), nil)

			Expect(m.Calc(d, x, u)).To(Succeed(), name)
			Expect(m.CalcDiff(d, x, u)).To(Succeed(), name)
		}
	})

	It("labels itself for diagnostics", func() {
		for name, build := range models() {
			Expect(build().String()).NotTo(BeEmpty(), name)
		}
	})
})
