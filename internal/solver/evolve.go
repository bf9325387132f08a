package solver

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	dErrors "knapsackd/pkg/domain-errors"
)

// Result is the projection of the best individual found during a solve.
// SelectedItems is never nil; an infeasible best degrades to the empty
// knapsack rather than a constraint-violating answer.
type Result struct {
	SelectedItems []Item
	TotalValue    int
	TotalWeight   int
}

// scored pairs an individual with its fitness so sorting and argmax scans
// evaluate each individual once.
type scored struct {
	ind     *Individual
	fitness float64
}

func scorePopulation(population []*Individual, items []Item, maxWeight float64) []scored {
	ranked := make([]scored, len(population))
	for i, ind := range population {
		ranked[i] = scored{ind: ind, fitness: ind.Fitness(items, maxWeight)}
	}
	return ranked
}

// bestOf returns the fittest individual, first seen winning ties, and its
// fitness. An empty population yields (nil, -Inf).
func bestOf(population []*Individual, items []Item, maxWeight float64) (*Individual, float64) {
	var best *Individual
	bestFitness := math.Inf(-1)
	for _, ind := range population {
		if fitness := ind.Fitness(items, maxWeight); fitness > bestFitness {
			best, bestFitness = ind, fitness
		}
	}
	return best, bestFitness
}

// NextGeneration builds the successor population. The elite slice — the top
// max(1, size/10) by fitness — survives by reference, untouched; the rest is
// filled by select → crossover → mutate rounds and truncated back to the
// population size, since the final round may yield two children.
func NextGeneration(population []*Individual, items []Item, params Params, rng *rand.Rand) []*Individual {
	eliteCount := max(1, len(population)/10)

	ranked := scorePopulation(population, items, params.MaxWeight)
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.fitness, a.fitness)
	})

	next := make([]*Individual, 0, len(population)+1)
	for _, s := range ranked[:eliteCount] {
		next = append(next, s.ind)
	}

	for len(next) < len(population) {
		parents := SelectParents(population, items, params.MaxWeight, rng)
		children := Crossover(parents, items, params.CrossoverRate, rng)
		Mutate(children, params.MutationRate, rng)
		next = append(next, children...)
	}

	return next[:len(population)]
}

// Solve runs the full generational loop over the catalog and projects the
// best individual seen — monotonically non-decreasing in fitness across the
// run — into a Result. With zero generations the best of the initial
// population is the answer. All state lives within this call; identical rng
// seeds yield identical runs.
func Solve(items []Item, params Params, rng *rand.Rand) (*Result, error) {
	if len(items) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "items must not be empty")
	}
	for i, item := range items {
		if item.Weight < 0 || item.Value < 0 {
			return nil, dErrors.Newf(dErrors.CodeValidation, "items[%d] weight and value must be non-negative", i)
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	population := InitialPopulation(params.PopulationSize, items, rng)
	best, bestFitness := bestOf(population, items, params.MaxWeight)

	for g := 0; g < params.Generations; g++ {
		population = NextGeneration(population, items, params, rng)
		if current, fitness := bestOf(population, items, params.MaxWeight); fitness > bestFitness {
			best, bestFitness = current, fitness
		}
	}

	// Never surface an infeasible best; infeasibility degrades to the empty
	// knapsack.
	if best == nil || float64(best.TotalWeight(items)) > params.MaxWeight {
		return &Result{SelectedItems: []Item{}}, nil
	}

	return &Result{
		SelectedItems: best.SelectedItems(items),
		TotalValue:    best.TotalValue(items),
		TotalWeight:   best.TotalWeight(items),
	}, nil
}
