package config

var Presets = map[string]map[string]*Config{
	"square": {
		"trapezoid": {
			Integrand: "square", Method: "trapezoid",
			Params: Params{Steps: 100},
			Sweep:  SweepConfig{Values: []int{10, 100, 1000}},
		},
		"simpson": {
			Integrand: "square", Method: "simpson",
			Params: Params{Steps: 100},
			Sweep:  SweepConfig{Values: []int{10, 100, 1000}},
		},
	},
	"wifi": {
		"montecarlo": {
			Integrand: "wifi", Method: "montecarlo",
			Params: Params{Samples: 100000, Seed: 1},
			Sweep:  SweepConfig{Values: []int{1000, 10000, 100000, 1000000}, Parallel: 4},
		},
		"romberg": {
			Integrand: "wifi", Method: "romberg",
			Params: Params{Rows: 10},
			Sweep:  SweepConfig{Values: []int{5, 10, 15}},
		},
	},
	"damped": {
		"gaussian": {
			Integrand: "damped", Method: "gaussian",
			Params: Params{Order: 64},
		},
		"clenshaw": {
			Integrand: "damped", Method: "clenshaw-curtis",
			Params: Params{MaxK: 50, MaxN: 100},
			Sweep:  SweepConfig{Values: []int{10, 20, 50, 100}},
		},
		"montecarlo": {
			Integrand: "damped", Method: "montecarlo",
			Params: Params{Samples: 30000, Seed: 1},
		},
	},
	"exp": {
		"rk4": {
			Integrand: "exp", Method: "rk4", Trace: true,
			Params: Params{Steps: 20},
			Sweep:  SweepConfig{Values: []int{5, 10, 20, 40, 80}},
		},
		"romberg-tol": {
			Integrand: "exp", Method: "romberg",
			Params: Params{Rows: 20, Atol: 1e-10},
		},
	},
}

func GetPreset(integrand, preset string) *Config {
	ps, ok := Presets[integrand]
	if !ok {
		return nil
	}
	cfg, ok := ps[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(integrand string) []string {
	ps, ok := Presets[integrand]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	return names
}

// Resolve fills unset preset parameters from DefaultParams.
func (c *Config) Resolve() *Config {
	out := *c
	d := DefaultParams()
	p := &out.Params
	if p.Steps == 0 {
		p.Steps = d.Steps
	}
	if p.Samples == 0 {
		p.Samples = d.Samples
	}
	if p.Rows == 0 {
		p.Rows = d.Rows
	}
	if p.Order == 0 {
		p.Order = d.Order
	}
	if p.MaxK == 0 {
		p.MaxK = d.MaxK
	}
	if p.MaxN == 0 {
		p.MaxN = d.MaxN
	}
	if out.Sweep.Parallel == 0 {
		out.Sweep.Parallel = DefaultParallel
	}
	out.Sweep.Values = append([]int(nil), c.Sweep.Values...)
	if c.Interval != nil {
		iv := *c.Interval
		out.Interval = &iv
	}
	return &out
}
