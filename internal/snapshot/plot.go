package snapshot

import "github.com/guptarohit/asciigraph"

const (
	plotHeight = 10
	plotWidth  = 72
)

// PlotPopulation draws a population history as an ASCII line chart.
func PlotPopulation(pop []float64, caption string) string {
	if len(pop) == 0 {
		return ""
	}
	return asciigraph.Plot(pop,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
