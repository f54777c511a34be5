package quad

import (
	"fmt"
	"math"
)

// Integral is the definite integral of f over [a, b]. The function and
// bounds never change after construction; an Integrator works on its own
// copy with an instrumented f installed.
type Integral struct {
	f    Func
	a, b float64
	eval Func
}

func NewIntegral(f Func, a, b float64) *Integral {
	return &Integral{f: f, a: a, b: b}
}

func (in *Integral) A() float64 { return in.a }
func (in *Integral) B() float64 { return in.b }

// Width returns b - a.
func (in *Integral) Width() float64 { return in.b - in.a }

// F returns the instrumented integrand if one is installed, f otherwise.
func (in *Integral) F() Func {
	if in.eval != nil {
		return in.eval
	}
	return in.f
}

// Eval evaluates the integrand at x.
func (in *Integral) Eval(x float64) float64 {
	return in.F()(x)
}

// Instrumented reports whether an evaluation counter is installed.
func (in *Integral) Instrumented() bool { return in.eval != nil }

func (in *Integral) Validate() error {
	if in.f == nil {
		return fmt.Errorf("%w: nil integrand", ErrInvalidInterval)
	}
	if math.IsNaN(in.a) || math.IsInf(in.a, 0) || math.IsNaN(in.b) || math.IsInf(in.b, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidInterval, in.a, in.b)
	}
	if in.a >= in.b {
		return fmt.Errorf("%w: need a < b, got [%g, %g]", ErrInvalidInterval, in.a, in.b)
	}
	return nil
}

// IntegrateWith runs s once on a fresh Integrator and returns its report.
func (in *Integral) IntegrateWith(s Strategy) (*Report, error) {
	return New(in, s).Integrate()
}

func (in *Integral) instrument(c *Counter) *Integral {
	if in == nil {
		return &Integral{}
	}
	cp := &Integral{f: in.f, a: in.a, b: in.b}
	if in.f != nil {
		cp.eval = c.Wrap(in.f)
	}
	return cp
}
