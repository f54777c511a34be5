package methods

import (
	"math/rand"

	"github.com/san-kum/quadlab/internal/quad"
)

// MonteCarlo averages f over uniform samples in [a, b]. Every run draws from
// a new source, so runs with the same seed are identical.
type MonteCarlo struct {
	samples   int
	seed      int64
	newSource func() rand.Source
}

func NewMonteCarlo(samples int, seed int64) (*MonteCarlo, error) {
	if err := checkPositive("MonteCarlo", "samples", samples); err != nil {
		return nil, err
	}
	m := &MonteCarlo{samples: samples, seed: seed}
	m.newSource = func() rand.Source { return rand.NewSource(m.seed) }
	return m, nil
}

// WithSource replaces the per-run source factory. A nil fn is ignored.
func (m *MonteCarlo) WithSource(fn func() rand.Source) *MonteCarlo {
	if fn == nil {
		return m
	}
	m.newSource = fn
	return m
}

func (m *MonteCarlo) Name() string { return "MonteCarlo" }
func (m *MonteCarlo) Samples() int { return m.samples }
func (m *MonteCarlo) Seed() int64  { return m.seed }

func (m *MonteCarlo) Integrate(in *quad.Integral, r *quad.Report) {
	rng := rand.New(m.newSource())
	f := in.F()
	a, w := in.A(), in.Width()

	sum := 0.0
	for i := 0; i < m.samples; i++ {
		sum += f(a + w*rng.Float64())
	}

	r.Output = w * sum / float64(m.samples)
	r.Iterations = m.samples
}
