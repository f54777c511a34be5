package methods

import (
	"math"

	"github.com/san-kum/quadlab/internal/quad"
)

const (
	DefaultClenshawK = 50
	DefaultClenshawN = 100
)

// ClenshawCurtis expands the rescaled integrand in Chebyshev polynomials by
// direct O(N) summation per coefficient and integrates the even terms.
// Every coefficient resamples f, so a run costs maxK*(maxN+1) evaluations.
type ClenshawCurtis struct {
	maxK int
	maxN int
}

func NewClenshawCurtis(maxK, maxN int) (*ClenshawCurtis, error) {
	if err := checkPositive("ClenshawCurtis", "max_k", maxK); err != nil {
		return nil, err
	}
	if err := checkPositive("ClenshawCurtis", "max_n", maxN); err != nil {
		return nil, err
	}
	return &ClenshawCurtis{maxK: maxK, maxN: maxN}, nil
}

func DefaultClenshawCurtis() *ClenshawCurtis {
	return &ClenshawCurtis{maxK: DefaultClenshawK, maxN: DefaultClenshawN}
}

func (c *ClenshawCurtis) Name() string { return "ClenshawCurtis" }
func (c *ClenshawCurtis) MaxK() int    { return c.maxK }
func (c *ClenshawCurtis) MaxN() int    { return c.maxN }

// coefficient returns the k-th Chebyshev coefficient of f on [-1, 1] from
// the N+1 extrema of T_N.
func (c *ClenshawCurtis) coefficient(f quad.Func, k int) float64 {
	n := float64(c.maxN)
	sum := 0.0
	for j := 1; j < c.maxN; j++ {
		theta := float64(j) * math.Pi / n
		sum += f(math.Cos(theta)) * math.Cos(float64(k)*theta)
	}
	ends := 0.5 * (f(1) + f(-1))
	return 2 / n * (ends + sum)
}

func (c *ClenshawCurtis) Integrate(in *quad.Integral, r *quad.Report) {
	f := rescale(in.F(), in.A(), in.B())

	total := c.coefficient(f, 0)
	for k := 1; k < c.maxK; k++ {
		kk := float64(k)
		total += 2 * c.coefficient(f, 2*k) / (1 - 4*kk*kk)
	}

	r.Output = total
	r.Iterations = c.maxK
}
