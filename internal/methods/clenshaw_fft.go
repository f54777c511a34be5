package methods

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/quadlab/internal/quad"
)

// FastClenshawCurtis computes the same estimate as ClenshawCurtis but takes
// every Chebyshev coefficient from a single DCT-I of the N+1 samples,
// evaluated as a real FFT of their even extension. A run costs maxN+1
// evaluations.
type FastClenshawCurtis struct {
	maxK int
	maxN int
}

func NewFastClenshawCurtis(maxK, maxN int) (*FastClenshawCurtis, error) {
	if err := checkPositive("FastClenshawCurtis", "max_k", maxK); err != nil {
		return nil, err
	}
	if err := checkPositive("FastClenshawCurtis", "max_n", maxN); err != nil {
		return nil, err
	}
	return &FastClenshawCurtis{maxK: maxK, maxN: maxN}, nil
}

func (c *FastClenshawCurtis) Name() string { return "FastClenshawCurtis" }
func (c *FastClenshawCurtis) MaxK() int    { return c.maxK }
func (c *FastClenshawCurtis) MaxN() int    { return c.maxN }

// coefficients returns a_k for k in [0, 2N), where a_k = Re(X_k)/N and X is
// the DFT of the even extension. Higher indices alias onto k mod 2N.
func (c *FastClenshawCurtis) coefficients(f quad.Func) []float64 {
	n := c.maxN
	ext := make([]float64, 2*n)
	for j := 0; j <= n; j++ {
		ext[j] = f(math.Cos(float64(j) * math.Pi / float64(n)))
	}
	for j := 1; j < n; j++ {
		ext[2*n-j] = ext[j]
	}

	spec := fft.FFTReal(ext)
	a := make([]float64, len(spec))
	for k, v := range spec {
		a[k] = real(v) / float64(n)
	}
	return a
}

func (c *FastClenshawCurtis) Integrate(in *quad.Integral, r *quad.Report) {
	f := rescale(in.F(), in.A(), in.B())
	a := c.coefficients(f)
	period := len(a)

	total := a[0]
	for k := 1; k < c.maxK; k++ {
		kk := float64(k)
		total += 2 * a[(2*k)%period] / (1 - 4*kk*kk)
	}

	r.Output = total
	r.Iterations = c.maxK
}
