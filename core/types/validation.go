// Package types - Tier validation results
package types

// Reason keys consumed by a translation layer. The engine never
// formats user-facing text itself.
const (
	ReasonBelowMinimum = "tier.seats.below_minimum"
	ReasonAboveMaximum = "tier.seats.above_maximum"
)

// ReasonParams carries interpolation values for a failed check.
// Only the violated bound is set.
type ReasonParams struct {
	// Tier is the display name of the checked tier
	Tier string `json:"tier"`

	// Min is the violated minimum, when seats fell below it
	Min int `json:"min,omitempty"`

	// Max is the violated maximum, when seats exceeded it
	Max int `json:"max,omitempty"`
}

// ValidationResult is the outcome of a tier/seat compatibility check.
// Produced fresh on every check, never persisted.
type ValidationResult struct {
	Valid bool `json:"valid"`

	// ReasonKey identifies the failure for message rendering (empty on success)
	ReasonKey string `json:"reason_key,omitempty"`

	// ReasonParams carries values for message interpolation (nil on success)
	ReasonParams *ReasonParams `json:"reason_params,omitempty"`
}
