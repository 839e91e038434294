// Package catalog - Built-in default catalog
package catalog

import (
	"github.com/shopspring/decimal"

	"seatwise/core/types"
)

// Default returns the built-in catalog used when no catalog file is
// configured. Three tiers ordered by minimum seats, three cadences,
// and the legacy names still found in old shared links.
func Default() *Catalog {
	tiers := []types.Tier{
		{
			ID:           "starter",
			Name:         "Starter",
			MinSeats:     1,
			MaxSeats:     types.LimitAt(49),
			PricePerSeat: 12000,
			Features:     []string{"core", "email-support"},
		},
		{
			ID:           "growth",
			Name:         "Growth",
			Badge:        "Most popular",
			MinSeats:     50,
			MaxSeats:     types.LimitAt(199),
			PricePerSeat: 10000,
			Features:     []string{"core", "email-support", "analytics"},
		},
		{
			ID:           "campus",
			Name:         "Campus",
			MinSeats:     200,
			MaxSeats:     types.NoLimit(),
			PricePerSeat: 8000,
			Features:     []string{"core", "priority-support", "analytics", "sso"},
		},
	}

	cadences := []types.Cadence{
		{ID: "monthly", Months: 1, Discount: decimal.Zero},
		{ID: "semiannual", Months: 6, Discount: decimal.RequireFromString("0.10")},
		{ID: "annual", Months: 12, Discount: decimal.RequireFromString("0.15")},
	}

	// Names from before the 2024 tier rename, kept so old links resolve.
	aliases := map[string]string{
		"basic":    "starter",
		"standard": "growth",
		"premium":  "campus",
		"school":   "campus",
	}

	return New(tiers, cadences, aliases)
}
