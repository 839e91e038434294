// Package selection - Persisted parameter set
package selection

import (
	"strconv"

	"seatwise/core/types"
)

// Parameter keys as they appear in the external store (e.g. a
// shareable URL's query string).
const (
	ParamTier     = "tier"
	ParamCadence  = "cadence"
	ParamSeats    = "seats"
	ParamTiming   = "timing"
	ParamCategory = "category"
)

// ParamSet is the externally persisted parameter set. All fields are
// strings as stored; any subset may be absent or malformed, and the
// reducer absorbs both via documented fallbacks.
type ParamSet struct {
	// Tier is a tier identifier, possibly a legacy alias
	Tier string `json:"tier,omitempty"`

	// Cadence is a cadence identifier
	Cadence string `json:"cadence,omitempty"`

	// Seats is a decimal-digit seat count
	Seats string `json:"seats,omitempty"`

	// Timing is a payment timing name
	Timing string `json:"timing,omitempty"`

	// Category is the institution category
	Category string `json:"category,omitempty"`
}

// Encode serializes a selection state to its persisted form. The
// override flag is not persisted; loading reconstructs it by comparing
// the stored tier against the seat-count recommendation.
func Encode(s types.SelectionState) ParamSet {
	return ParamSet{
		Tier:     s.TierID,
		Cadence:  s.CadenceID,
		Seats:    strconv.Itoa(s.Seats),
		Timing:   s.Timing.String(),
		Category: s.Category,
	}
}
