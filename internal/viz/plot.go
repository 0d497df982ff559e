package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/optctl/internal/rollout"
)

const (
	plotWidth  = 70
	plotHeight = 12
)

// CostPlot renders the per-node cost curve of a run.
func CostPlot(result *rollout.Result) string {
	if len(result.Costs) < 2 {
		return ""
	}
	return asciigraph.Plot(result.Costs,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption("cost per node"),
	)
}

// StatePlot renders one state component over the trajectory.
func StatePlot(result *rollout.Result, component int) string {
	if len(result.States) < 2 || component < 0 || component >= len(result.States[0]) {
		return ""
	}
	series := make([]float64, len(result.States))
	for i, x := range result.States {
		series[i] = x[component]
	}
	return asciigraph.Plot(series,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption("state component"),
	)
}
