package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	model "auction-house/internal/models"
)

func TestExtractAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bids []model.Bid
		want []float64
	}{
		{
			name: "empty_input",
			bids: nil,
			want: []float64{},
		},
		{
			name: "single_bid",
			bids: []model.Bid{{Amount: 42}},
			want: []float64{42},
		},
		{
			name: "unordered_bids_sorted_ascending",
			bids: []model.Bid{{Amount: 30}, {Amount: 10}, {Amount: 20}},
			want: []float64{10, 20, 30},
		},
		{
			name: "duplicate_amounts_preserved",
			bids: []model.Bid{{Amount: 15}, {Amount: 15}, {Amount: 10}},
			want: []float64{10, 15, 15},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractAmounts(tc.bids)

			require.Equal(t, tc.want, got)
			require.Len(t, got, len(tc.bids))
			require.True(t, sort.Float64sAreSorted(got))
			if len(got) > 0 {
				max := got[0]
				for _, v := range got {
					if v > max {
						max = v
					}
				}
				require.Equal(t, max, got[len(got)-1], "highest amount must be the last element")
			}
		})
	}
}
