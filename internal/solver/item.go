package solver

// Item is one entry in the knapsack catalog. Items are immutable for the
// duration of a solve; identity is positional, so the i-th bit of every
// individual refers to the i-th item of the catalog.
type Item struct {
	Name   string
	Weight int
	Value  int
}
