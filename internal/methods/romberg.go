package methods

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/san-kum/quadlab/internal/quad"
)

// MaxRombergRows bounds the table size; row j costs 2^(j-1) evaluations.
const MaxRombergRows = 30

// Romberg applies Richardson extrapolation to nested trapezoid estimates.
// Row j of the table uses 2^j subintervals; its diagonal entry is the row's
// best estimate.
type Romberg struct {
	m      int
	atol   float64
	rtol   float64
	logger zerolog.Logger
}

type RombergOption func(*Romberg)

// WithAtol stops once two successive diagonal estimates differ by less than tol.
func WithAtol(tol float64) RombergOption {
	return func(r *Romberg) { r.atol = tol }
}

// WithRtol stops once the relative change between successive diagonal
// estimates is below tol.
func WithRtol(tol float64) RombergOption {
	return func(r *Romberg) { r.rtol = tol }
}

func NewRomberg(m int, opts ...RombergOption) (*Romberg, error) {
	if err := checkPositive("Romberg", "rows", m); err != nil {
		return nil, err
	}
	if m > MaxRombergRows {
		return nil, quad.InvalidParam("Romberg", "rows", m, "exceeds MaxRombergRows")
	}
	r := &Romberg{m: m, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.atol < 0 || math.IsNaN(r.atol) {
		return nil, quad.InvalidParam("Romberg", "atol", r.atol, "must be non-negative")
	}
	if r.rtol < 0 || math.IsNaN(r.rtol) {
		return nil, quad.InvalidParam("Romberg", "rtol", r.rtol, "must be non-negative")
	}
	return r, nil
}

func (rb *Romberg) Name() string               { return "Romberg" }
func (rb *Romberg) Rows() int                  { return rb.m }
func (rb *Romberg) SetLogger(l zerolog.Logger) { rb.logger = l }

func (rb *Romberg) Integrate(in *quad.Integral, r *quad.Report) {
	f := in.F()
	a, b := in.A(), in.B()
	h := b - a

	table := make([][]float64, rb.m+1)
	table[0] = []float64{0.5 * h * (f(a) + f(b))}
	r.Record(0, table[0][0])

	last := 0
	for j := 1; j <= rb.m; j++ {
		h /= 2
		row := make([]float64, j+1)
		prev := table[j-1]

		sum := 0.0
		for i := 0; i < 1<<(j-1); i++ {
			sum += f(a + float64(2*i+1)*h)
		}
		row[0] = 0.5*prev[0] + h*sum

		pow := 1.0
		for k := 1; k <= j; k++ {
			pow *= 4
			row[k] = row[k-1] + (row[k-1]-prev[k-1])/(pow-1)
		}
		table[j] = row
		last = j

		est, before := row[j], prev[j-1]
		r.Record(float64(j), est)
		rb.logger.Trace().Int("row", j).Float64("h", h).Float64("estimate", est).Msg("romberg row")

		if rb.converged(est, before) {
			rb.logger.Debug().Int("row", j).Int("max_rows", rb.m).Msg("romberg converged early")
			break
		}
	}

	r.Output = table[last][last]
	r.Iterations = last
}

func (rb *Romberg) converged(cur, prev float64) bool {
	if rb.atol > 0 && math.Abs(cur-prev) < rb.atol {
		return true
	}
	return rb.rtol > 0 && quad.RelativeChange(cur, prev) < rb.rtol
}
