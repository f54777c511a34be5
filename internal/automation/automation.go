package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadlab/internal/config"
	"github.com/san-kum/quadlab/internal/experiment"
	"github.com/san-kum/quadlab/internal/quad"
	"github.com/san-kum/quadlab/internal/storage"
)

// Scenario defines a scripted sequence of integrations
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Unset parameters take their defaults.
type ScenarioStep struct {
	config.Config `yaml:",inline"`
	Save          bool `yaml:"save"`
}

// StepResult pairs a step's result with its stored run id, if saved.
type StepResult struct {
	*experiment.Result
	RunID string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

type Runner struct {
	registry  *experiment.Registry
	store     *storage.Store
	observers []quad.Observer
	logger    zerolog.Logger
}

// NewRunner builds a runner. store may be nil when no step saves.
func NewRunner(registry *experiment.Registry, store *storage.Store) *Runner {
	return &Runner{
		registry:  registry,
		store:     store,
		observers: make([]quad.Observer, 0),
		logger:    zerolog.Nop(),
	}
}

func (r *Runner) SetLogger(l zerolog.Logger)  { r.logger = l }
func (r *Runner) AddObserver(o quad.Observer) { r.observers = append(r.observers, o) }

// Run executes all steps in order and stops at the first failure, returning
// the results completed so far.
func (r *Runner) Run(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg := step.Config.Resolve()
		r.logger.Info().
			Int("step", i+1).
			Int("of", len(scenario.Steps)).
			Str("integrand", cfg.Integrand).
			Str("method", cfg.Method).
			Msg("running scenario step")

		exp, err := experiment.New(r.registry, cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, o := range r.observers {
			exp.Integrator().AddObserver(o)
		}

		res, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Result: res}
		if step.Save {
			if r.store == nil {
				return results, fmt.Errorf("step %d: save requested without a store", i+1)
			}
			if sr.RunID, err = r.store.Save(res); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
