package methods

import "github.com/san-kum/quadlab/internal/quad"

// Stepper advances dy/dx = f(x) by one step of size h from (x, y).
type Stepper interface {
	Name() string
	Step(f quad.Func, x, y, h float64) float64
}

// resetter is implemented by steppers that carry state between steps of
// one run.
type resetter interface {
	Reset()
}

// ODE integrates f as the terminal value y(b) of dy/dx = f(x), y(a) = 0,
// using a fixed number of steps of a Stepper.
type ODE struct {
	stepper Stepper
	n       int
}

func NewODE(s Stepper, n int) (*ODE, error) {
	if err := checkPositive(s.Name(), "steps", n); err != nil {
		return nil, err
	}
	return &ODE{stepper: s, n: n}, nil
}

func NewEuler(n int) (*ODE, error)       { return NewODE(NewEulerStep(), n) }
func NewMidpoint(n int) (*ODE, error)    { return NewODE(NewMidpointStep(), n) }
func NewRungeKutta4(n int) (*ODE, error) { return NewODE(NewRK4Step(), n) }

func (o *ODE) Name() string     { return o.stepper.Name() }
func (o *ODE) Steps() int       { return o.n }
func (o *ODE) Stepper() Stepper { return o.stepper }

func (o *ODE) Integrate(in *quad.Integral, r *quad.Report) {
	if rs, ok := o.stepper.(resetter); ok {
		rs.Reset()
	}

	f := in.F()
	h := in.Width() / float64(o.n)
	x, y := in.A(), 0.0
	r.Record(x, y)

	for i := 0; i < o.n; i++ {
		y = o.stepper.Step(f, x, y, h)
		x += h
		r.Record(x, y)
	}

	r.Output = y
	r.Iterations = o.n
}
