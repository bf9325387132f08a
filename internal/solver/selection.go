package solver

import "math/rand/v2"

// tournamentSize is the number of individuals competing per parent draw.
// Tournament selection gives selection pressure without global fitness
// scaling and tolerates negative fitness, unlike roulette-wheel selection.
const tournamentSize = 4

// SelectParents picks two parents via independent tournaments: each draws
// tournamentSize distinct individuals uniformly without replacement and
// takes the fittest (first seen wins ties). The two tournaments may elect
// the same individual twice. Populations too small to hold a tournament
// degenerate to a random sample of at most two distinct individuals.
func SelectParents(population []*Individual, items []Item, maxWeight float64, rng *rand.Rand) []*Individual {
	if len(population) < tournamentSize {
		n := min(2, len(population))
		parents := make([]*Individual, 0, n)
		for _, idx := range rng.Perm(len(population))[:n] {
			parents = append(parents, population[idx])
		}
		return parents
	}

	parents := make([]*Individual, 2)
	for p := range parents {
		var winner *Individual
		var winnerFitness float64
		for _, idx := range rng.Perm(len(population))[:tournamentSize] {
			fitness := population[idx].Fitness(items, maxWeight)
			if winner == nil || fitness > winnerFitness {
				winner, winnerFitness = population[idx], fitness
			}
		}
		parents[p] = winner
	}
	return parents
}
