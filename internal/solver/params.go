package solver

import (
	dErrors "knapsackd/pkg/domain-errors"
)

// Documented request defaults, applied when a field is absent.
const (
	DefaultMaxWeight      = 15
	DefaultPopulationSize = 6
	DefaultGenerations    = 100
	DefaultCrossoverRate  = 0.53
	DefaultMutationRate   = 0.013
)

// Params are the run parameters for one solve, immutable for its duration.
type Params struct {
	MaxWeight      float64
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		MaxWeight:      DefaultMaxWeight,
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
	}
}

// Validate enforces parameter ranges before any population work happens.
func (p Params) Validate() error {
	if p.PopulationSize < 1 {
		return dErrors.New(dErrors.CodeValidation, "population_size must be at least 1")
	}
	if p.Generations < 0 {
		return dErrors.New(dErrors.CodeValidation, "generations must not be negative")
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return dErrors.New(dErrors.CodeValidation, "crossover_rate must be within [0, 1]")
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return dErrors.New(dErrors.CodeValidation, "mutation_rate must be within [0, 1]")
	}
	return nil
}
