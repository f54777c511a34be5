// Package sweep measures absolute error against one method parameter.
package sweep

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/integrands"
	"github.com/san-kum/quadlab/internal/metrics"
	"github.com/san-kum/quadlab/internal/quad"
)

type Trial struct {
	Param    int          `json:"param"`
	Report   *quad.Report `json:"report"`
	AbsError float64      `json:"abs_error"`
}

type Sweep struct {
	reg       *experiment.Registry
	integrand integrands.Integrand
	method    string
	base      config.Params
	limit     int
	observers []quad.Observer
}

func New(reg *experiment.Registry, cfg *config.Config) (*Sweep, error) {
	ig, err := integrands.Get(cfg.Integrand)
	if err != nil {
		return nil, err
	}
	if a, b, ok := cfg.Bounds(); ok {
		ig = ig.Over(a, b)
	}
	if _, err := reg.Primary(cfg.Method); err != nil {
		return nil, err
	}

	limit := cfg.Sweep.Parallel
	if limit < 1 {
		limit = 1
	}

	return &Sweep{
		reg:       reg,
		integrand: ig,
		method:    cfg.Method,
		base:      cfg.Params,
		limit:     limit,
		observers: make([]quad.Observer, 0),
	}, nil
}

// SetLimit bounds the number of concurrent trials. 1 runs them in order on
// a single Integrator.
func (s *Sweep) SetLimit(n int) {
	if n < 1 {
		n = 1
	}
	s.limit = n
}

// AddObserver attaches o to every trial. With a limit above 1, o must be
// safe for concurrent use.
func (s *Sweep) AddObserver(o quad.Observer) { s.observers = append(s.observers, o) }

func (s *Sweep) strategy(v int) (quad.Strategy, error) {
	p, err := s.reg.WithPrimary(s.method, s.base, v)
	if err != nil {
		return nil, err
	}
	return s.reg.GetStrategy(s.method, p)
}

func (s *Sweep) integrator() *quad.Integrator {
	it := quad.New(s.integrand.Integral(), nil)
	for _, o := range s.observers {
		it.AddObserver(o)
	}
	return it
}

func (s *Sweep) trial(it *quad.Integrator, v int) (Trial, error) {
	st, err := s.strategy(v)
	if err != nil {
		return Trial{}, err
	}
	rep, err := it.IntegrateWith(st)
	if err != nil {
		return Trial{}, fmt.Errorf("%s=%d: %w", s.method, v, err)
	}
	return Trial{
		Param:    v,
		Report:   rep,
		AbsError: metrics.AbsError(rep, s.integrand.Exact),
	}, nil
}

// Run integrates once per value. Trials come back in the order of values.
func (s *Sweep) Run(ctx context.Context, values []int) ([]Trial, error) {
	if s.limit == 1 {
		return s.runSequential(ctx, values)
	}
	return s.runParallel(ctx, values)
}

func (s *Sweep) runSequential(ctx context.Context, values []int) ([]Trial, error) {
	trials := make([]Trial, 0, len(values))
	it := s.integrator()
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tr, err := s.trial(it, v)
		if err != nil {
			return nil, err
		}
		trials = append(trials, tr)
	}
	return trials, nil
}

func (s *Sweep) runParallel(ctx context.Context, values []int) ([]Trial, error) {
	trials := make([]Trial, len(values))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, v := range values {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			tr, err := s.trial(s.integrator(), v)
			if err != nil {
				return err
			}
			trials[i] = tr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trials, nil
}

// Best returns the trial with the lowest absolute error. Trials without an
// exact reference are ignored.
func Best(trials []Trial) (Trial, bool) {
	best := Trial{AbsError: math.Inf(1)}
	found := false
	for _, tr := range trials {
		if math.IsNaN(tr.AbsError) {
			continue
		}
		if tr.AbsError < best.AbsError {
			best = tr
			found = true
		}
	}
	return best, found
}
