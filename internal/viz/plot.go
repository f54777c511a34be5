package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quadlab/internal/metrics"
	"github.com/san-kum/quadlab/internal/quad"
	"github.com/san-kum/quadlab/internal/sweep"
)

// SweepPlot draws log10 absolute error for each trial, in trial order.
// Trials without an exact value are left out.
func SweepPlot(trials []sweep.Trial, caption string) string {
	data := make([]float64, 0, len(trials))
	params := make([]string, 0, len(trials))
	for _, tr := range trials {
		if math.IsNaN(tr.AbsError) {
			continue
		}
		data = append(data, metrics.Log10Error(tr.AbsError))
		params = append(params, fmt.Sprintf("%d", tr.Param))
	}
	if len(data) == 0 {
		return "no exact value to compare against"
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth(len(data))),
		asciigraph.Caption(fmt.Sprintf("%s: log10 |error| at %s", caption, strings.Join(params, ", "))),
	)
	return graph
}

// TracePlot draws the y values of a trace.
func TracePlot(points []quad.Point, caption string) string {
	if len(points) == 0 {
		return ""
	}
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Y
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth(len(data))),
		asciigraph.Caption(caption),
	)
}

func plotWidth(n int) int {
	if n < 20 {
		return 40
	}
	if n > 80 {
		return 80
	}
	return n
}
