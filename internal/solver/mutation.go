package solver

import "math/rand/v2"

// Mutate flips each bit of each individual in place, independently with
// probability mutationRate per position. Every position is its own
// Bernoulli trial; nothing guarantees at least one flip.
func Mutate(individuals []*Individual, mutationRate float64, rng *rand.Rand) {
	for _, ind := range individuals {
		for i := range ind.Bits {
			if rng.Float64() < mutationRate {
				ind.Bits[i] = 1 - ind.Bits[i]
			}
		}
	}
}
