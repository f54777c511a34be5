package methods

import "github.com/san-kum/quadlab/internal/quad"

// RK4Step is the classical Runge-Kutta step. The slope does not depend on y,
// so k2 and k3 coincide and each step is Simpson's rule on [x, x+h]. The
// slope at the end of a step is kept and reused as k1 of the next.
type RK4Step struct {
	lastX, lastF float64
	cached       bool
}

func NewRK4Step() *RK4Step {
	return &RK4Step{}
}

func (r *RK4Step) Name() string { return "RungeKutta4" }

func (r *RK4Step) Reset() {
	r.cached = false
}

func (r *RK4Step) Step(f quad.Func, x, y, h float64) float64 {
	var k1 float64
	if r.cached && r.lastX == x {
		k1 = r.lastF
	} else {
		k1 = f(x)
	}
	k2 := f(x + 0.5*h)
	end := x + h
	k4 := f(end)

	r.lastX, r.lastF, r.cached = end, k4, true

	return y + h*(k1/6+2*k2/3+k4/6)
}
