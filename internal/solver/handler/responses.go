package handler

import (
	"knapsackd/internal/solver"
)

// SolveResponse is the HTTP response for POST /solve.
type SolveResponse struct {
	SelectedItems []ItemPayload `json:"selected_items"`
	TotalValue    int           `json:"total_value"`
	TotalWeight   int           `json:"total_weight"`
}

// FromResult converts a solver Result to an HTTP response. SelectedItems is
// always a JSON array, never null.
func FromResult(result *solver.Result) *SolveResponse {
	selected := make([]ItemPayload, 0, len(result.SelectedItems))
	for _, item := range result.SelectedItems {
		selected = append(selected, ItemPayload{
			Name:   item.Name,
			Weight: item.Weight,
			Value:  item.Value,
		})
	}
	return &SolveResponse{
		SelectedItems: selected,
		TotalValue:    result.TotalValue,
		TotalWeight:   result.TotalWeight,
	}
}
