package quad

import (
	"time"

	"github.com/rs/zerolog"
)

// Integrator binds one Integral to a swappable Strategy.
type Integrator struct {
	integral  *Integral
	counter   *Counter
	strategy  Strategy
	observers []Observer
	logger    zerolog.Logger
	trace     bool
	now       func() time.Time
}

// New installs an evaluation counter on a private copy of in. The caller's
// Integral is left untouched. s may be nil and set later. A nil in makes
// Integrate fail with ErrInvalidInterval.
func New(in *Integral, s Strategy) *Integrator {
	c := NewCounter()
	return &Integrator{
		integral:  in.instrument(c),
		counter:   c,
		strategy:  s,
		observers: make([]Observer, 0),
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
}

func (it *Integrator) SetStrategy(s Strategy)     { it.strategy = s }
func (it *Integrator) Strategy() Strategy         { return it.strategy }
func (it *Integrator) Integral() *Integral        { return it.integral }
func (it *Integrator) SetTrace(on bool)           { it.trace = on }
func (it *Integrator) SetLogger(l zerolog.Logger) { it.logger = l }
func (it *Integrator) AddObserver(o Observer)     { it.observers = append(it.observers, o) }

// IntegrateWith makes s the active strategy and integrates.
func (it *Integrator) IntegrateWith(s Strategy) (*Report, error) {
	it.SetStrategy(s)
	return it.Integrate()
}

// Integrate runs the active strategy and returns a fresh Report.
func (it *Integrator) Integrate() (*Report, error) {
	if it.strategy == nil {
		return nil, ErrNoStrategySet
	}
	if err := it.integral.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Method:  it.strategy.Name(),
		tracing: it.trace,
	}
	it.counter.Reset()

	r.Start = it.now()
	it.strategy.Integrate(it.integral, r)
	r.End = it.now()
	r.Evals = it.counter.Count()

	for _, o := range it.observers {
		o.OnReport(r)
	}

	it.logger.Debug().
		Str("method", r.Method).
		Float64("a", it.integral.A()).
		Float64("b", it.integral.B()).
		Float64("output", r.Output).
		Int("evals", r.Evals).
		Dur("elapsed", r.Elapsed()).
		Msg("integration complete")

	return r, nil
}
