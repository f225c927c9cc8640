package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	errUnknownVariant  = errors.New("unknown variant")
	errInvalidScenario = errors.New("invalid scenario")
)

// scenario is one benchmark configuration, from flags or from a scenario file.
type scenario struct {
	Variant string      `yaml:"variant"`
	N       int         `yaml:"n"`
	M       int         `yaml:"m"`
	P       int         `yaml:"p"`
	Density densityType `yaml:"density"`
	Runs    int         `yaml:"runs"`
	Seed    int64       `yaml:"seed"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func (s *scenario) applyDefaults() {
	if s.Density == "" {
		s.Density = densityLow
	}
	if s.Runs == 0 {
		s.Runs = 3
	}
}

func (s scenario) validate() error {
	if _, ok := variants[s.Variant]; !ok {
		return fmt.Errorf("%w: %q", errUnknownVariant, s.Variant)
	}
	if s.N <= 0 || s.M <= 0 || s.Runs <= 0 {
		return fmt.Errorf("%w: n, m and runs must be positive", errInvalidScenario)
	}
	switch s.Density {
	case densityLow:
	case densityHigh:
		if s.P <= 0 || s.P > min(s.N, s.M) {
			return fmt.Errorf("%w: p must be in [1, min(n, m)] with high density", errInvalidScenario)
		}
	default:
		return fmt.Errorf("%w: density %q", errInvalidScenario, s.Density)
	}
	return nil
}

// loadScenarios reads a YAML file of the form
//
//	scenarios:
//	  - variant: table
//	    n: 1000
//	    m: 1000
//	    p: 50
//	    density: high
func loadScenarios(path string) ([]scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: %s has no scenarios", errInvalidScenario, path)
	}
	for i := range file.Scenarios {
		file.Scenarios[i].applyDefaults()
		if err := file.Scenarios[i].validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}
	return file.Scenarios, nil
}
