package solver

import "math/rand/v2"

// InitialPopulation draws exactly count individuals with uniform random
// bits. Duplicate bit vectors are rejected while the attempt budget
// (count * 10) lasts; once exhausted, remaining slots are filled without the
// distinctness check so initialization cost stays bounded on tiny catalogs.
// Infeasible individuals are kept — the fitness penalty handles them.
func InitialPopulation(count int, items []Item, rng *rand.Rand) []*Individual {
	population := make([]*Individual, 0, count)
	seen := make(map[string]struct{}, count)

	for attempts := count * 10; len(population) < count && attempts > 0; attempts-- {
		ind := randomIndividual(len(items), rng)
		if _, dup := seen[ind.key()]; dup {
			continue
		}
		seen[ind.key()] = struct{}{}
		population = append(population, ind)
	}

	for len(population) < count {
		population = append(population, randomIndividual(len(items), rng))
	}

	return population
}
