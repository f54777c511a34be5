package methods

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/quadlab/internal/quad"
	gquad "gonum.org/v1/gonum/integrate/quad"
)

func TestClenshawCurtisAccuracy(t *testing.T) {
	cc := DefaultClenshawCurtis()

	tests := []struct {
		name  string
		f     quad.Func
		a, b  float64
		exact float64
	}{
		{"exp", math.Exp, 0, 1, math.E - 1},
		{"square", square, 0, 1, 1.0 / 3},
		{"sin", math.Sin, 0, math.Pi, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := integrate(t, tt.f, tt.a, tt.b, cc)
			if e := absErr(r.Output, tt.exact); e > 1e-12 {
				t.Errorf("error %e", e)
			}
		})
	}
}

func TestClenshawCurtisMatchesGonum(t *testing.T) {
	cc := DefaultClenshawCurtis()
	f := func(x float64) float64 { return math.Exp(-x) * math.Pow(math.Sin(4*x), 2) }

	r := integrate(t, f, -2, 2, cc)
	ref := gquad.Fixed(f, -2, 2, 64, gquad.Legendre{}, 0)
	if math.Abs(r.Output-ref) > 1e-10 {
		t.Errorf("got %.15f, gonum reference %.15f", r.Output, ref)
	}
}

func TestClenshawCurtisEvalCount(t *testing.T) {
	tests := []struct{ k, n int }{
		{1, 1},
		{5, 10},
		{50, 100},
		{200, 100},
	}

	for _, tt := range tests {
		cc := must[*ClenshawCurtis](t)(NewClenshawCurtis(tt.k, tt.n))
		r := integrate(t, math.Exp, 0, 1, cc)
		if want := tt.k * (tt.n + 1); r.Evals != want {
			t.Errorf("k=%d n=%d: evals = %d, want %d", tt.k, tt.n, r.Evals, want)
		}
	}
}

func TestClenshawCurtisAliasing(t *testing.T) {
	// with 2k beyond N the coefficients alias and accuracy drops
	good := DefaultClenshawCurtis()
	aliased := must[*ClenshawCurtis](t)(NewClenshawCurtis(200, 100))

	rg := integrate(t, math.Exp, 0, 1, good)
	ra := integrate(t, math.Exp, 0, 1, aliased)
	if absErr(ra.Output, math.E-1) <= absErr(rg.Output, math.E-1) {
		t.Error("expected aliased configuration to be less accurate")
	}
}

func TestClenshawCurtisInvalid(t *testing.T) {
	for _, p := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewClenshawCurtis(p[0], p[1]); !errors.Is(err, quad.ErrInvalidParameter) {
			t.Errorf("%v: expected ErrInvalidParameter, got %v", p, err)
		}
	}
}

func TestFastClenshawCurtisMatchesDirect(t *testing.T) {
	damped := func(x float64) float64 { return math.Exp(-x) * math.Pow(math.Sin(4*x), 2) }

	for _, p := range [][2]int{{1, 1}, {7, 3}, {5, 10}, {50, 100}, {200, 100}, {64, 128}} {
		direct := must[*ClenshawCurtis](t)(NewClenshawCurtis(p[0], p[1]))
		fast := must[*FastClenshawCurtis](t)(NewFastClenshawCurtis(p[0], p[1]))

		for _, f := range []quad.Func{math.Exp, damped} {
			rd := integrate(t, f, -2, 2, direct)
			rf := integrate(t, f, -2, 2, fast)
			if math.Abs(rd.Output-rf.Output) > 1e-11 {
				t.Errorf("k=%d n=%d: direct %.15f, fast %.15f", p[0], p[1], rd.Output, rf.Output)
			}
			if rf.Evals != p[1]+1 {
				t.Errorf("k=%d n=%d: evals = %d, want %d", p[0], p[1], rf.Evals, p[1]+1)
			}
		}
	}
}

func TestFastClenshawCurtisInvalid(t *testing.T) {
	for _, p := range [][2]int{{0, 10}, {10, 0}} {
		if _, err := NewFastClenshawCurtis(p[0], p[1]); !errors.Is(err, quad.ErrInvalidParameter) {
			t.Errorf("%v: expected ErrInvalidParameter, got %v", p, err)
		}
	}
}
