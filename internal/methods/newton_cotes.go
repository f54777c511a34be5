package methods

import "github.com/san-kum/quadlab/internal/quad"

// Trapezoid is the composite trapezoid rule over n equal subintervals.
type Trapezoid struct {
	n int
}

func NewTrapezoid(n int) (*Trapezoid, error) {
	if err := checkPositive("Trapezoid", "steps", n); err != nil {
		return nil, err
	}
	return &Trapezoid{n: n}, nil
}

func (t *Trapezoid) Name() string { return "Trapezoid" }
func (t *Trapezoid) Steps() int   { return t.n }

func (t *Trapezoid) Integrate(in *quad.Integral, r *quad.Report) {
	f := in.F()
	a, b := in.A(), in.B()
	h := (b - a) / float64(t.n)

	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < t.n; i++ {
		sum += f(a + float64(i)*h)
	}

	r.Output = sum * h
	r.Iterations = t.n
}

// Simpson is the composite Simpson's 1/3 rule. The step count must be even.
type Simpson struct {
	n int
}

func NewSimpson(n int) (*Simpson, error) {
	if err := checkPositive("SimpsonsOneThird", "steps", n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, quad.InvalidParam("SimpsonsOneThird", "steps", n, "must be even")
	}
	return &Simpson{n: n}, nil
}

func (s *Simpson) Name() string { return "SimpsonsOneThird" }
func (s *Simpson) Steps() int   { return s.n }

func (s *Simpson) Integrate(in *quad.Integral, r *quad.Report) {
	f := in.F()
	a, b := in.A(), in.B()
	h := (b - a) / float64(s.n)

	odd, even := 0.0, 0.0
	for i := 1; i < s.n; i++ {
		if i%2 == 1 {
			odd += f(a + float64(i)*h)
		} else {
			even += f(a + float64(i)*h)
		}
	}

	r.Output = h / 3 * (f(a) + 4*odd + 2*even + f(b))
	r.Iterations = s.n
}

// LeftHand is the left Riemann sum over n equal subintervals.
type LeftHand struct {
	n int
}

func NewLeftHand(n int) (*LeftHand, error) {
	if err := checkPositive("LeftHand", "steps", n); err != nil {
		return nil, err
	}
	return &LeftHand{n: n}, nil
}

func (l *LeftHand) Name() string { return "LeftHand" }
func (l *LeftHand) Steps() int   { return l.n }

func (l *LeftHand) Integrate(in *quad.Integral, r *quad.Report) {
	r.Output = riemann(in, l.n, 0)
	r.Iterations = l.n
}

// RightHand is the right Riemann sum over n equal subintervals.
type RightHand struct {
	n int
}

func NewRightHand(n int) (*RightHand, error) {
	if err := checkPositive("RightHand", "steps", n); err != nil {
		return nil, err
	}
	return &RightHand{n: n}, nil
}

func (rh *RightHand) Name() string { return "RightHand" }
func (rh *RightHand) Steps() int   { return rh.n }

func (rh *RightHand) Integrate(in *quad.Integral, r *quad.Report) {
	r.Output = riemann(in, rh.n, 1)
	r.Iterations = rh.n
}

// riemann sums f(a + (i+offset)h) for i in [0, n).
func riemann(in *quad.Integral, n, offset int) float64 {
	f := in.F()
	a := in.A()
	h := in.Width() / float64(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f(a + float64(i+offset)*h)
	}
	return sum * h
}
