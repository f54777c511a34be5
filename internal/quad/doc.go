// Package quad provides the core primitives for numerical integration runs.
//
// The package binds a one-dimensional definite integral to a pluggable
// quadrature algorithm and measures what the algorithm costs:
//
//   - [Integral]: the integrand f and the interval [a, b]
//   - [Strategy]: a quadrature algorithm that writes its estimate into a [Report]
//   - [Integrator]: orchestrates runs, counts evaluations and times them
//   - [Report]: output, evaluation count, method, timing and optional trace
//
// # Example
//
//	in := quad.NewIntegral(math.Exp, 0, 1)
//	s, _ := methods.NewSimpson(100)
//	report, err := in.IntegrateWith(s)
//
// # Thread Safety
//
// Integrator instances are NOT thread-safe. Run parallel trials with one
// Integrator per goroutine (see the sweep package).
package quad
