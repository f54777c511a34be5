package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps    = 1000
	DefaultSamples  = 100000
	DefaultSeed     = 1
	DefaultRows     = 10
	DefaultOrder    = 64
	DefaultMaxK     = 50
	DefaultMaxN     = 100
	DefaultParallel = 1
)

type Config struct {
	Integrand string          `yaml:"integrand"`
	Method    string          `yaml:"method"`
	Interval  *IntervalConfig `yaml:"interval,omitempty"`
	Params    Params          `yaml:"params"`
	Trace     bool            `yaml:"trace"`
	Sweep     SweepConfig     `yaml:"sweep"`
}

// IntervalConfig overrides the integrand's default bounds.
type IntervalConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Params holds the parameters of every method; each method reads only its own.
type Params struct {
	Steps   int     `yaml:"steps"`
	Samples int     `yaml:"samples"`
	Seed    int64   `yaml:"seed"`
	Rows    int     `yaml:"rows"`
	Atol    float64 `yaml:"atol"`
	Rtol    float64 `yaml:"rtol"`
	Order   int     `yaml:"order"`
	MaxK    int     `yaml:"max_k"`
	MaxN    int     `yaml:"max_n"`
}

// SweepConfig lists the values of the method's primary parameter to sweep.
type SweepConfig struct {
	Values   []int `yaml:"values"`
	Parallel int   `yaml:"parallel"`
}

func DefaultParams() Params {
	return Params{
		Steps:   DefaultSteps,
		Samples: DefaultSamples,
		Seed:    DefaultSeed,
		Rows:    DefaultRows,
		Order:   DefaultOrder,
		MaxK:    DefaultMaxK,
		MaxN:    DefaultMaxN,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Integrand: "exp",
		Method:    "simpson",
		Params:    DefaultParams(),
		Sweep: SweepConfig{
			Parallel: DefaultParallel,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file at path onto cfg. Keys missing from the file keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bounds returns the interval override, if any.
func (c *Config) Bounds() (a, b float64, ok bool) {
	if c.Interval == nil {
		return 0, 0, false
	}
	return c.Interval.A, c.Interval.B, true
}
