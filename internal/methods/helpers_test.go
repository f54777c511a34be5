package methods

import (
	"math"
	"testing"

	"github.com/san-kum/quadlab/internal/quad"
)

func square(x float64) float64  { return x * x }
func quartic(x float64) float64 { return x * x * x * x }

func integrate(t *testing.T, f quad.Func, a, b float64, s quad.Strategy) *quad.Report {
	t.Helper()
	r, err := quad.NewIntegral(f, a, b).IntegrateWith(s)
	if err != nil {
		t.Fatalf("%s: integrate failed: %v", s.Name(), err)
	}
	return r
}

func traced(t *testing.T, f quad.Func, a, b float64, s quad.Strategy) *quad.Report {
	t.Helper()
	it := quad.New(quad.NewIntegral(f, a, b), s)
	it.SetTrace(true)
	r, err := it.Integrate()
	if err != nil {
		t.Fatalf("%s: integrate failed: %v", s.Name(), err)
	}
	return r
}

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor failed: %v", err)
		}
		return v
	}
}

func absErr(got, want float64) float64 { return math.Abs(got - want) }
