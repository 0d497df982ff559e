// Package metrics provides trajectory observers that summarize a run
// alongside the residual costs: average control effort and a stability
// score.
package metrics

import (
	"math"

	"github.com/san-kum/optctl/internal/rollout"
)

// Metric is an observer that reduces a trajectory to one number.
type Metric interface {
	rollout.Observer
	Name() string
	Value() float64
	Reset()
}

type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{name: "control_effort"}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) OnStep(x rollout.State, u rollout.Control, t float64) {
	for _, val := range u {
		c.sum += math.Abs(val)
	}
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}

// Stability is the fraction of nodes whose state stayed within the
// threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) OnStep(x rollout.State, u rollout.Control, t float64) {
	s.samples++
	for _, val := range x {
		if math.Abs(val) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
