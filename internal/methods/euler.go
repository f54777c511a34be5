package methods

import "github.com/san-kum/quadlab/internal/quad"

// EulerStep is the explicit Euler step. For a y-independent slope it is the
// left rectangle rule.
type EulerStep struct{}

func NewEulerStep() *EulerStep {
	return &EulerStep{}
}

func (e *EulerStep) Name() string { return "Euler" }

func (e *EulerStep) Step(f quad.Func, x, y, h float64) float64 {
	return y + h*f(x)
}

// MidpointStep is the explicit midpoint step, which reduces to the midpoint
// rule.
type MidpointStep struct{}

func NewMidpointStep() *MidpointStep {
	return &MidpointStep{}
}

func (m *MidpointStep) Name() string { return "Midpoint" }

func (m *MidpointStep) Step(f quad.Func, x, y, h float64) float64 {
	return y + h*f(x+0.5*h)
}
