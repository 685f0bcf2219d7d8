package synth

import "github.com/ssalihyetim/jobforge/internal/types"

// CreateLot synthesizes one job per lot order. A failure on one order is
// recorded against that order and processing continues for the rest; the
// lot succeeds only when every order synthesized cleanly.
func CreateLot(orders []types.LotOrder) types.LotResult {
	result := types.LotResult{}

	for _, order := range orders {
		job, err := CreateJobFromSuggestion(order.Suggestion, order.Customizations)
		if err != nil {
			result.Errors = append(result.Errors, types.LotError{
				OrderID: order.OrderID,
				Message: err.Error(),
			})
			continue
		}
		result.Jobs = append(result.Jobs, job)
		result.JobsCreated++
	}

	result.Success = len(result.Errors) == 0
	return result
}
