// Package api - Core-to-wire mapping
package api

import (
	"seatwise/core/types"
)

func tierView(t types.Tier) TierView {
	v := TierView{
		ID:           t.ID,
		Name:         t.Name,
		Badge:        t.Badge,
		MinSeats:     t.MinSeats,
		PricePerSeat: t.PricePerSeat,
		Features:     t.Features,
	}
	if max, bounded := t.MaxSeats.Max(); bounded {
		v.MaxSeats = &max
	}
	return v
}

func cadenceView(c types.Cadence) CadenceView {
	return CadenceView{
		ID:       c.ID,
		Months:   c.Months,
		Discount: c.Discount.String(),
	}
}

func rankEntries(ranking []types.CadenceCost) []RankEntry {
	entries := make([]RankEntry, 0, len(ranking))
	for _, rc := range ranking {
		entries = append(entries, RankEntry{
			Cadence:        cadenceView(rc.Cadence),
			MonthlyCost:    rc.MonthlyCost.Round(0).IntPart(),
			Savings:        rc.SavingsVsBaseline.Round(0).IntPart(),
			SavingsPercent: rc.SavingsPercent.Round(1).String(),
		})
	}
	return entries
}
