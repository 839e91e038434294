// Package types - Selection state
package types

// SelectionState is the engine's held state: which tier is selected,
// whether the user overrode the recommendation, and the billing
// parameters. Mutated only through the selection reducer; mirrored to
// an external parameter store after every transition.
type SelectionState struct {
	// TierID references a catalog tier (never embedded by value)
	TierID string `json:"tier"`

	// Override is true when the user explicitly picked the tier
	// (MANUAL), false when it tracks the seat-count recommendation (AUTO)
	Override bool `json:"override"`

	// Seats is the billable seat count, clamped to [1, max]
	Seats int `json:"seats"`

	// CadenceID references a catalog cadence
	CadenceID string `json:"cadence"`

	// Timing is the payment timing
	Timing PaymentTiming `json:"timing"`

	// Category is the institution category, opaque to the engine
	Category string `json:"category,omitempty"`
}
