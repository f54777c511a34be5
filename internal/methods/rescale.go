package methods

import "github.com/san-kum/quadlab/internal/quad"

// rescale maps f on [a, b] to [-1, 1]. The Jacobian (b-a)/2 is folded into
// the returned function so its integral over [-1, 1] equals the original.
func rescale(f quad.Func, a, b float64) quad.Func {
	half := (b - a) * 0.5
	mid := (a + b) * 0.5
	return func(t float64) float64 {
		return half * f(half*t+mid)
	}
}

func checkPositive(method, param string, n int) error {
	if n <= 0 {
		return quad.InvalidParam(method, param, n, "must be positive")
	}
	return nil
}
