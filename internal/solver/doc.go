// Package solver implements a genetic search for the 0/1 knapsack problem:
// fixed-length bit-vector individuals, value-or-penalty fitness, tournament
// selection, single-point crossover, per-bit mutation, and an elitist
// generational loop that tracks the best individual ever seen.
//
// The package is deliberately stateless: every operation borrows the catalog,
// weight cap, and random source from its caller, so one Solve call owns all
// of its state and nothing persists between calls.
package solver
