// Package lookup - Tier resolution
// Pure functions resolving a catalog tier by identifier or by seat
// count. Both are total over a validated catalog: unknown identifiers
// report absence, never an error, and every seat count resolves to
// exactly one tier.
package lookup

import (
	"seatwise/core/catalog"
	"seatwise/core/types"
)

// TierByID resolves a tier by identifier after applying the catalog's
// legacy-alias map. Unknown identifiers report ok=false.
func TierByID(cat *catalog.Catalog, id string) (types.Tier, bool) {
	return cat.Tier(cat.ResolveAlias(id))
}

// TierForSeats returns the recommended tier for a seat count: the tier
// with the greatest minimum not exceeding seats. Seat counts below
// every minimum land on the lowest tier; counts beyond the highest
// tier's range land on the highest tier.
//
// Total for any seats >= 1. Requires a validated, non-empty catalog.
func TierForSeats(cat *catalog.Catalog, seats int) types.Tier {
	best := cat.Lowest()
	for _, t := range cat.Tiers() {
		if t.MinSeats <= seats {
			best = t
		}
	}
	return best
}
