package solver

import "math/rand/v2"

// Crossover recombines two parents at a single point drawn uniformly from
// [1, len(items)-1] — never 0 or the last index, so both children differ
// from both parents whenever the catalog has more than one item. When
// recombination is skipped (a missing parent, a failed rate check, or a
// single-item catalog with no interior point) it returns clones of the
// parents: the round's output is always freshly owned, so in-place mutation
// downstream can never touch individuals still held by the current
// population.
func Crossover(parents []*Individual, items []Item, crossoverRate float64, rng *rand.Rand) []*Individual {
	if len(parents) < 2 || len(items) < 2 || rng.Float64() > crossoverRate {
		out := make([]*Individual, len(parents))
		for i, parent := range parents {
			out[i] = parent.Clone()
		}
		return out
	}

	point := 1 + rng.IntN(len(items)-1)

	child1 := make([]byte, len(items))
	copy(child1, parents[0].Bits[:point])
	copy(child1[point:], parents[1].Bits[point:])

	child2 := make([]byte, len(items))
	copy(child2, parents[1].Bits[:point])
	copy(child2[point:], parents[0].Bits[point:])

	return []*Individual{{Bits: child1}, {Bits: child2}}
}
