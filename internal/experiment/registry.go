package experiment

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/methods"
	"github.com/san-kum/quadlab/internal/quad"
)

type factory func(p config.Params) (quad.Strategy, error)

// method pairs a factory with the parameter a sweep varies.
type method struct {
	build   factory
	primary string
	set     func(p *config.Params, v int)
}

type Registry struct {
	methods map[string]method
	logger  zerolog.Logger
}

func setSteps(p *config.Params, v int)   { p.Steps = v }
func setSamples(p *config.Params, v int) { p.Samples = v }
func setRows(p *config.Params, v int)    { p.Rows = v }
func setOrder(p *config.Params, v int)   { p.Order = v }
func setMaxK(p *config.Params, v int)    { p.MaxK = v }

func NewRegistry() *Registry {
	r := &Registry{
		methods: make(map[string]method),
		logger:  zerolog.Nop(),
	}

	steps := func(fn func(int) (quad.Strategy, error)) method {
		return method{
			build:   func(p config.Params) (quad.Strategy, error) { return fn(p.Steps) },
			primary: "steps",
			set:     setSteps,
		}
	}

	r.methods["trapezoid"] = steps(func(n int) (quad.Strategy, error) { return methods.NewTrapezoid(n) })
	r.methods["simpson"] = steps(func(n int) (quad.Strategy, error) { return methods.NewSimpson(n) })
	r.methods["left"] = steps(func(n int) (quad.Strategy, error) { return methods.NewLeftHand(n) })
	r.methods["right"] = steps(func(n int) (quad.Strategy, error) { return methods.NewRightHand(n) })
	r.methods["euler"] = steps(func(n int) (quad.Strategy, error) { return methods.NewEuler(n) })
	r.methods["midpoint"] = steps(func(n int) (quad.Strategy, error) { return methods.NewMidpoint(n) })
	r.methods["rk4"] = steps(func(n int) (quad.Strategy, error) { return methods.NewRungeKutta4(n) })

	r.methods["montecarlo"] = method{
		build: func(p config.Params) (quad.Strategy, error) {
			return methods.NewMonteCarlo(p.Samples, p.Seed)
		},
		primary: "samples",
		set:     setSamples,
	}
	r.methods["romberg"] = method{
		build: func(p config.Params) (quad.Strategy, error) {
			rb, err := methods.NewRomberg(p.Rows, methods.WithAtol(p.Atol), methods.WithRtol(p.Rtol))
			if err != nil {
				return nil, err
			}
			rb.SetLogger(r.logger)
			return rb, nil
		},
		primary: "rows",
		set:     setRows,
	}
	r.methods["gaussian"] = method{
		build: func(p config.Params) (quad.Strategy, error) {
			return methods.NewGaussian(p.Order)
		},
		primary: "order",
		set:     setOrder,
	}
	r.methods["clenshaw-curtis"] = method{
		build: func(p config.Params) (quad.Strategy, error) {
			return methods.NewClenshawCurtis(p.MaxK, p.MaxN)
		},
		primary: "max_k",
		set:     setMaxK,
	}
	r.methods["clenshaw-curtis-fft"] = method{
		build: func(p config.Params) (quad.Strategy, error) {
			return methods.NewFastClenshawCurtis(p.MaxK, p.MaxN)
		},
		primary: "max_k",
		set:     setMaxK,
	}

	return r
}

func (r *Registry) SetLogger(l zerolog.Logger) { r.logger = l }

func (r *Registry) lookup(name string) (method, error) {
	m, ok := r.methods[name]
	if !ok {
		return method{}, fmt.Errorf("unknown method: %s", name)
	}
	return m, nil
}

func (r *Registry) GetStrategy(name string, p config.Params) (quad.Strategy, error) {
	m, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := m.build(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Primary names the parameter a sweep over this method varies.
func (r *Registry) Primary(name string) (string, error) {
	m, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return m.primary, nil
}

// WithPrimary returns a copy of p with the method's primary parameter set to v.
func (r *Registry) WithPrimary(name string, p config.Params, v int) (config.Params, error) {
	m, err := r.lookup(name)
	if err != nil {
		return p, err
	}
	m.set(&p, v)
	return p, nil
}

func (r *Registry) Methods() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
