package methods

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/san-kum/quadlab/internal/quad"
)

func TestRombergFullTable(t *testing.T) {
	s := must[*Romberg](t)(NewRomberg(10))
	r := traced(t, math.Exp, 0, 1, s)

	if r.Iterations != 10 {
		t.Errorf("rows = %d, want 10", r.Iterations)
	}
	if r.Evals != 1<<10+1 {
		t.Errorf("evals = %d, want %d", r.Evals, 1<<10+1)
	}
	if len(r.Trace) != 11 {
		t.Fatalf("expected 11 diagonal estimates, got %d", len(r.Trace))
	}
	if last := r.Trace[len(r.Trace)-1]; last.X != 10 || last.Y != r.Output {
		t.Errorf("final diagonal %+v does not match output %v", last, r.Output)
	}
	if e := absErr(r.Output, math.E-1); e > 1e-14 {
		t.Errorf("error too large: %e", e)
	}
}

func TestRombergAbsoluteTolerance(t *testing.T) {
	const atol = 1e-8
	s := must[*Romberg](t)(NewRomberg(10, WithAtol(atol)))
	r := traced(t, math.Exp, 0, 1, s)

	if r.Iterations >= 10 {
		t.Fatalf("expected early stop, computed %d rows", r.Iterations)
	}
	if r.Evals != 1<<r.Iterations+1 {
		t.Errorf("evals = %d, want %d", r.Evals, 1<<r.Iterations+1)
	}

	n := len(r.Trace)
	if n != r.Iterations+1 {
		t.Fatalf("trace has %d points for %d rows", n, r.Iterations)
	}
	final, before := r.Trace[n-1].Y, r.Trace[n-2].Y
	if final != r.Output {
		t.Errorf("output %v is not the last diagonal %v", r.Output, final)
	}
	if math.Abs(final-before) >= atol {
		t.Errorf("last change %e not below atol", math.Abs(final-before))
	}
	if math.Abs(r.Trace[n-2].Y-r.Trace[n-3].Y) < atol {
		t.Error("did not stop at the first converged row")
	}
}

func TestRombergRelativeTolerance(t *testing.T) {
	s := must[*Romberg](t)(NewRomberg(20, WithRtol(1e-12)))
	r := traced(t, math.Sin, 0, math.Pi, s)

	if r.Iterations >= 20 {
		t.Fatalf("expected early stop, computed %d rows", r.Iterations)
	}
	n := len(r.Trace)
	if quad.RelativeChange(r.Trace[n-1].Y, r.Trace[n-2].Y) >= 1e-12 {
		t.Error("stopped before relative tolerance was met")
	}
	if e := absErr(r.Output, 2); e > 1e-9 {
		t.Errorf("error too large: %e", e)
	}
}

func TestRombergExactOnLowDegree(t *testing.T) {
	// one extrapolation removes the h^2 term, which is exact for cubics
	cubic := func(x float64) float64 { return x*x*x - 2*x + 1 }
	s := must[*Romberg](t)(NewRomberg(1))
	r := integrate(t, cubic, 0, 2, s)

	if e := absErr(r.Output, 2); e > 1e-14 {
		t.Errorf("error on cubic: %e", e)
	}
	if r.Evals != 3 {
		t.Errorf("evals = %d, want 3", r.Evals)
	}
}

func TestRombergInvalid(t *testing.T) {
	tests := []struct {
		name string
		m    int
		opts []RombergOption
	}{
		{"zero rows", 0, nil},
		{"negative rows", -2, nil},
		{"too many rows", MaxRombergRows + 1, nil},
		{"negative atol", 5, []RombergOption{WithAtol(-1)}},
		{"negative rtol", 5, []RombergOption{WithRtol(-1e-3)}},
		{"nan atol", 5, []RombergOption{WithAtol(math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRomberg(tt.m, tt.opts...); !errors.Is(err, quad.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRombergLogger(t *testing.T) {
	var buf bytes.Buffer
	s := must[*Romberg](t)(NewRomberg(8, WithAtol(1e-6)))
	s.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	integrate(t, math.Exp, 0, 1, s)
	if buf.Len() == 0 {
		t.Error("expected a convergence log line")
	}
}
