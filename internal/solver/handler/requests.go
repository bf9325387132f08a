package handler

import (
	"strings"

	"knapsackd/internal/solver"
	dErrors "knapsackd/pkg/domain-errors"
)

// SolveRequest is the HTTP request body for POST /solve. Optional fields use
// pointers so absent values fall back to the documented defaults rather than
// colliding with legitimate zeros.
type SolveRequest struct {
	Items          []ItemPayload `json:"items"`
	MaxWeight      *float64      `json:"max_weight"`
	PopulationSize *int          `json:"population_size"`
	Generations    *int          `json:"generations"`
	CrossoverRate  *float64      `json:"crossover_rate"`
	MutationRate   *float64      `json:"mutation_rate"`
	Seed           *uint64       `json:"seed"`

	// Parsed values (populated by Validate)
	parsedItems  []solver.Item
	parsedParams solver.Params
}

// ItemPayload is one catalog entry on the wire.
type ItemPayload struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Value  int    `json:"value"`
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SolveRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if len(r.Items) == 0 {
		return dErrors.New(dErrors.CodeValidation, "items is required and must not be empty")
	}

	r.parsedItems = make([]solver.Item, 0, len(r.Items))
	for i, item := range r.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return dErrors.Newf(dErrors.CodeValidation, "items[%d].name is required", i)
		}
		if item.Weight < 0 {
			return dErrors.Newf(dErrors.CodeValidation, "items[%d].weight must be non-negative", i)
		}
		if item.Value < 0 {
			return dErrors.Newf(dErrors.CodeValidation, "items[%d].value must be non-negative", i)
		}
		r.parsedItems = append(r.parsedItems, solver.Item{
			Name:   name,
			Weight: item.Weight,
			Value:  item.Value,
		})
	}

	params := solver.DefaultParams()
	if r.MaxWeight != nil {
		params.MaxWeight = *r.MaxWeight
	}
	if r.PopulationSize != nil {
		params.PopulationSize = *r.PopulationSize
	}
	if r.Generations != nil {
		params.Generations = *r.Generations
	}
	if r.CrossoverRate != nil {
		params.CrossoverRate = *r.CrossoverRate
	}
	if r.MutationRate != nil {
		params.MutationRate = *r.MutationRate
	}
	if err := params.Validate(); err != nil {
		return err
	}
	r.parsedParams = params

	return nil
}

// ParsedItems returns the validated catalog.
func (r *SolveRequest) ParsedItems() []solver.Item {
	return r.parsedItems
}

// ParsedParams returns the validated run parameters with defaults applied.
func (r *SolveRequest) ParsedParams() solver.Params {
	return r.parsedParams
}
