package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/integrands"
	"github.com/san-kum/quadlab/internal/metrics"
	"github.com/san-kum/quadlab/internal/quad"
)

type Result struct {
	Integrand string
	Method    string
	A, B      float64
	Params    config.Params
	Report    *quad.Report
	Exact     float64
	AbsErr    float64
}

type Experiment struct {
	cfg        *config.Config
	integrand  integrands.Integrand
	integrator *quad.Integrator
}

func New(reg *Registry, cfg *config.Config) (*Experiment, error) {
	ig, err := integrands.Get(cfg.Integrand)
	if err != nil {
		return nil, err
	}
	if a, b, ok := cfg.Bounds(); ok {
		ig = ig.Over(a, b)
	}

	s, err := reg.GetStrategy(cfg.Method, cfg.Params)
	if err != nil {
		return nil, err
	}

	it := quad.New(ig.Integral(), s)
	it.SetTrace(cfg.Trace)
	it.SetLogger(reg.logger)

	return &Experiment{
		cfg:        cfg,
		integrand:  ig,
		integrator: it,
	}, nil
}

// Integrator returns the underlying integrator for adding observers.
func (e *Experiment) Integrator() *quad.Integrator {
	return e.integrator
}

func (e *Experiment) Integrand() integrands.Integrand {
	return e.integrand
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep, err := e.integrator.Integrate()
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", e.cfg.Method, e.integrand.Name, err)
	}

	return &Result{
		Integrand: e.integrand.Name,
		Method:    e.cfg.Method,
		A:         e.integrand.A,
		B:         e.integrand.B,
		Params:    e.cfg.Params,
		Report:    rep,
		Exact:     e.integrand.Exact,
		AbsErr:    metrics.AbsError(rep, e.integrand.Exact),
	}, nil
}
