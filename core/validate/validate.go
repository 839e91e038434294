// Package validate - Tier/seat compatibility checking
// A failing check is a normal outcome consumed as a warning by the
// caller, never an error. The check performs no string formatting;
// reason keys and params are rendered by a translation layer.
package validate

import (
	"seatwise/core/types"
)

// Check reports whether seats is compatible with the tier's range.
// On failure the result carries the tier's display name and the
// violated bound for message interpolation.
func Check(tier types.Tier, seats int) types.ValidationResult {
	if seats < tier.MinSeats {
		return types.ValidationResult{
			ReasonKey: types.ReasonBelowMinimum,
			ReasonParams: &types.ReasonParams{
				Tier: tier.Name,
				Min:  tier.MinSeats,
			},
		}
	}
	if max, bounded := tier.MaxSeats.Max(); bounded && seats > max {
		return types.ValidationResult{
			ReasonKey: types.ReasonAboveMaximum,
			ReasonParams: &types.ReasonParams{
				Tier: tier.Name,
				Max:  max,
			},
		}
	}
	return types.ValidationResult{Valid: true}
}
