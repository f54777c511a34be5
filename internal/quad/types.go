package quad

import (
	"fmt"
	"math"
	"time"
)

// Func is a scalar integrand.
type Func func(x float64) float64

// Point is one (x, y) pair of a run trace.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Strategy is a quadrature algorithm. Integrate reads the problem through
// in.Eval or in.F and writes its estimate into r.Output.
type Strategy interface {
	Name() string
	Integrate(in *Integral, r *Report)
}

// Observer is notified with every completed report.
type Observer interface {
	OnReport(r *Report)
}

// Report is the metrics record of a single integration run.
type Report struct {
	Output     float64
	Evals      int
	Method     string
	Start      time.Time
	End        time.Time
	Iterations int
	Trace      []Point

	tracing bool
}

// Record appends (x, y) to the trace when tracing is enabled.
func (r *Report) Record(x, y float64) {
	if !r.tracing {
		return
	}
	r.Trace = append(r.Trace, Point{X: x, Y: y})
}

// Tracing reports whether Record keeps points.
func (r *Report) Tracing() bool { return r.tracing }

func (r *Report) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: output=%.15g evals=%d elapsed=%v", r.Method, r.Output, r.Evals, r.Elapsed())
}

// RelativeChange returns |x-y| / max(|x|, |y|, 1). The floor of one makes it
// fall back to the absolute difference near zero.
func RelativeChange(x, y float64) float64 {
	return math.Abs(x-y) / math.Max(math.Max(math.Abs(x), math.Abs(y)), 1)
}
