package utils

import (
	"sort"

	model "auction-house/internal/models"
)

// ExtractAmounts maps bids to their numeric amounts sorted ascending, so the
// highest bid is always the last element. An empty bid list yields an empty
// slice; callers must guard before taking the maximum.
func ExtractAmounts(bids []model.Bid) []float64 {
	amounts := make([]float64, 0, len(bids))
	for _, b := range bids {
		amounts = append(amounts, b.Amount)
	}
	sort.Float64s(amounts)
	return amounts
}
