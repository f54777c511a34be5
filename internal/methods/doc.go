// Package methods implements the quadrature strategies run by quad.Integrator.
//
// Newton-Cotes rules (Trapezoid, SimpsonsOneThird, LeftHand, RightHand) and
// the ODE family (Euler, Midpoint, RungeKutta4) use a fixed number of
// steps. Romberg refines by halving until its row budget or tolerance is
// reached. Gaussian and ClenshawCurtis rescale the problem to [-1, 1] and
// sum over fixed node sets. MonteCarlo samples uniformly from a seeded
// source.
package methods
