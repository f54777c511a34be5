// Package analysis characterizes how a method converges over a sweep.
//
//   - [ObservedOrder]: empirical order of convergence p, from err ~ C n^-p
//   - [Efficiency]: absolute error per integrand evaluation
//
// # Reading the Order
//
// For fixed-step rules n is the number of subintervals, so the trapezoid
// rule should report p close to 2 and Simpson's rule p close to 4 on smooth
// integrands. Monte Carlo sweeps over samples report p close to 0.5:
//
//	fit, err := analysis.ObservedOrder(trials)
//	if err == nil && fit.Order < 1 {
//	    // slower than first order
//	}
package analysis
