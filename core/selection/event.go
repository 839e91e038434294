// Package selection - Selection events
package selection

import "seatwise/core/types"

// Event is one external input to the selection reducer. Events are
// processed strictly in order; no event ever fails.
type Event interface {
	isEvent()
}

// Loaded carries an externally persisted parameter set, applied at
// session start or when the store notifies of an outside change.
type Loaded struct {
	Params ParamSet
}

// SeatsChanged carries a new seat count.
type SeatsChanged struct {
	Seats int
}

// TierPicked is an explicit user tier choice.
type TierPicked struct {
	TierID string
}

// RecommendationAdopted abandons the user override and returns to the
// seat-count recommendation.
type RecommendationAdopted struct{}

// CadenceChanged carries a new billing cadence.
type CadenceChanged struct {
	CadenceID string
}

// TimingChanged carries a new payment timing.
type TimingChanged struct {
	Timing types.PaymentTiming
}

// CategoryChanged carries a new institution category.
type CategoryChanged struct {
	Category string
}

func (Loaded) isEvent()                {}
func (SeatsChanged) isEvent()          {}
func (TierPicked) isEvent()            {}
func (RecommendationAdopted) isEvent() {}
func (CadenceChanged) isEvent()        {}
func (TimingChanged) isEvent()         {}
func (CategoryChanged) isEvent()       {}
