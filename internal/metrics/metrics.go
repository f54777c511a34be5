package metrics

import (
	"math"

	"github.com/san-kum/quadlab/internal/quad"
)

// AbsError is |output - exact|, or NaN when the exact value is unknown.
func AbsError(r *quad.Report, exact float64) float64 {
	if r == nil || math.IsNaN(exact) {
		return math.NaN()
	}
	return math.Abs(r.Output - exact)
}

// Log10Error maps an absolute error onto a plottable scale. Exact results
// clamp to the smallest representable double.
func Log10Error(err float64) float64 {
	if math.IsNaN(err) {
		return math.NaN()
	}
	if err < math.SmallestNonzeroFloat64 {
		err = math.SmallestNonzeroFloat64
	}
	return math.Log10(err)
}
