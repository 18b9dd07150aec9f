// Package config loads the interpreter's execution limits from an
// optional YAML file, mirroring the teacher's vibes.Config/NewEngine
// validation pattern (cmd/vibes reads flags into a Config struct before
// constructing its engine; here the CLI reads a file instead).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits bounds how much work a single Run can do before the
// interpreter gives up: StepQuota caps the number of statements
// executed, RecursionLimit caps nested method-call depth. Either left
// at zero disables that particular check.
type Limits struct {
	StepQuota      int `yaml:"step_quota"`
	RecursionLimit int `yaml:"recursion_limit"`
}

// Default returns generous limits suitable for running scripts from the
// command line without a config file.
func Default() Limits {
	return Limits{StepQuota: 2_000_000, RecursionLimit: 1000}
}

// Load reads and validates a Limits value from a YAML file at path.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("read config: %w", err)
	}
	limits := Default()
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("parse config: %w", err)
	}
	if err := limits.Validate(); err != nil {
		return Limits{}, err
	}
	return limits, nil
}

// Validate rejects negative limits, which would make every run fail
// immediately rather than express "unlimited" the way zero does.
func (l Limits) Validate() error {
	if l.StepQuota < 0 {
		return fmt.Errorf("step_quota must be >= 0, got %d", l.StepQuota)
	}
	if l.RecursionLimit < 0 {
		return fmt.Errorf("recursion_limit must be >= 0, got %d", l.RecursionLimit)
	}
	return nil
}
