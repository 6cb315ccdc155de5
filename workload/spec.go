package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sched-sim/sched-sim/sim"
)

// ScenarioSpec is the top-level workload configuration.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Seed    int64  `yaml:"seed"`
	Cores   int    `yaml:"cores"`
	Scheme  string `yaml:"scheme"`
	Quantum int64  `yaml:"quantum,omitempty"` // required for rr

	NumJobs int     `yaml:"num_jobs"`
	Rate    float64 `yaml:"rate"` // mean arrivals per tick (Poisson process)

	RunTime        DistSpec `yaml:"run_time"`
	PriorityLevels int      `yaml:"priority_levels,omitempty"` // priorities drawn from [0, levels)
}

// DistSpec configures a clamped-Gaussian integer distribution.
type DistSpec struct {
	Mean  int64 `yaml:"mean"`
	Stdev int64 `yaml:"stdev"`
	Min   int64 `yaml:"min"`
	Max   int64 `yaml:"max"`
}

// Validate checks the spec for values the generator cannot work with.
func (s *ScenarioSpec) Validate() error {
	if s.Cores < 1 {
		return fmt.Errorf("scenario: cores must be >= 1, got %d", s.Cores)
	}
	scheme, err := sim.ParseScheme(s.Scheme)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if scheme.QuantumDriven() && s.Quantum < 1 {
		return fmt.Errorf("scenario: scheme %q requires quantum >= 1, got %d", s.Scheme, s.Quantum)
	}
	if s.NumJobs < 1 {
		return fmt.Errorf("scenario: num_jobs must be >= 1, got %d", s.NumJobs)
	}
	if s.Rate <= 0 {
		return fmt.Errorf("scenario: rate must be positive, got %v", s.Rate)
	}
	if s.RunTime.Min < 1 {
		return fmt.Errorf("scenario: run_time.min must be >= 1, got %d", s.RunTime.Min)
	}
	if s.RunTime.Max < s.RunTime.Min {
		return fmt.Errorf("scenario: run_time.max (%d) below run_time.min (%d)", s.RunTime.Max, s.RunTime.Min)
	}
	if s.PriorityLevels < 0 {
		return fmt.Errorf("scenario: priority_levels must be >= 0, got %d", s.PriorityLevels)
	}
	return nil
}

// LoadScenarioSpec reads and validates a YAML scenario file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
