// Package pricing - Cadence ranking
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"seatwise/core/types"
)

// Rank computes a breakdown for every cadence in the table and returns
// all of them ordered by amortized monthly cost ascending, ties broken
// by cadence duration ascending (shorter commitment first). Every
// cadence appears exactly once; the first entry is the cheapest.
//
// in.Cadence is ignored; each table entry is costed in turn. Savings
// columns are relative to the costliest cadence in the same ranking.
func Rank(in Input, cadences []types.Cadence) []types.CadenceCost {
	ranked := make([]types.CadenceCost, 0, len(cadences))
	for _, cd := range cadences {
		entry := in
		entry.Cadence = cd
		ranked = append(ranked, types.CadenceCost{
			Cadence:     cd,
			MonthlyCost: Compute(entry).TotalPerMonth,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if c := ranked[i].MonthlyCost.Cmp(ranked[j].MonthlyCost); c != 0 {
			return c < 0
		}
		return ranked[i].Cadence.Months < ranked[j].Cadence.Months
	})

	if len(ranked) == 0 {
		return ranked
	}

	baseline := ranked[len(ranked)-1].MonthlyCost
	hundred := decimal.NewFromInt(100)
	for i := range ranked {
		saving := baseline.Sub(ranked[i].MonthlyCost)
		ranked[i].SavingsVsBaseline = saving
		if baseline.IsPositive() {
			ranked[i].SavingsPercent = saving.Div(baseline).Mul(hundred)
		} else {
			ranked[i].SavingsPercent = decimal.Zero
		}
	}
	return ranked
}
