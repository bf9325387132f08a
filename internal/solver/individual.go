package solver

import "math/rand/v2"

// Individual is one candidate solution: a fixed-length bit vector over the
// catalog, each bit deciding whether the item at that index is packed. The
// individual owns its bits exclusively; the catalog and weight cap are
// borrowed from the caller on every operation, never stored.
type Individual struct {
	Bits []byte
}

// Clone returns an individual with its own copy of the bit vector.
func (ind *Individual) Clone() *Individual {
	bits := make([]byte, len(ind.Bits))
	copy(bits, ind.Bits)
	return &Individual{Bits: bits}
}

// key is the structural dedup key: the raw bit contents, not a formatted
// rendering of them.
func (ind *Individual) key() string {
	return string(ind.Bits)
}

// Fitness scores the individual against the catalog and weight cap. Feasible
// individuals score their total value. Infeasible ones score the negated
// overshoot, strictly below every feasible score and monotonically worse the
// further past the cap — a gradient back toward feasibility rather than a
// flat reject.
func (ind *Individual) Fitness(items []Item, maxWeight float64) float64 {
	var totalValue, totalWeight int
	for i, bit := range ind.Bits {
		if bit == 1 {
			totalValue += items[i].Value
			totalWeight += items[i].Weight
		}
	}
	if float64(totalWeight) <= maxWeight {
		return float64(totalValue)
	}
	return -(float64(totalWeight) - maxWeight)
}

// TotalWeight sums the weights of the packed items.
func (ind *Individual) TotalWeight(items []Item) int {
	var total int
	for i, bit := range ind.Bits {
		if bit == 1 {
			total += items[i].Weight
		}
	}
	return total
}

// TotalValue sums the values of the packed items.
func (ind *Individual) TotalValue(items []Item) int {
	var total int
	for i, bit := range ind.Bits {
		if bit == 1 {
			total += items[i].Value
		}
	}
	return total
}

// SelectedItems returns the packed items in catalog order.
func (ind *Individual) SelectedItems(items []Item) []Item {
	selected := make([]Item, 0, len(items))
	for i, bit := range ind.Bits {
		if bit == 1 {
			selected = append(selected, items[i])
		}
	}
	return selected
}

// randomIndividual draws every bit independently and uniformly from {0, 1}.
func randomIndividual(length int, rng *rand.Rand) *Individual {
	bits := make([]byte, length)
	for i := range bits {
		bits[i] = byte(rng.IntN(2))
	}
	return &Individual{Bits: bits}
}
