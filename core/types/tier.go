// Package types - Shared value types for the seat-pricing engine
package types

// SeatLimit is the upper bound of a tier's seat range.
// A limit is either a concrete inclusive maximum or unbounded.
type SeatLimit struct {
	max     int
	bounded bool
}

// LimitAt returns a bounded seat limit with inclusive maximum n.
func LimitAt(n int) SeatLimit {
	return SeatLimit{max: n, bounded: true}
}

// NoLimit returns an unbounded seat limit.
func NoLimit() SeatLimit {
	return SeatLimit{}
}

// Unbounded reports whether the limit has no maximum.
func (l SeatLimit) Unbounded() bool {
	return !l.bounded
}

// Max returns the inclusive maximum and whether one exists.
func (l SeatLimit) Max() (int, bool) {
	return l.max, l.bounded
}

// Allows reports whether seats is within the limit.
func (l SeatLimit) Allows(seats int) bool {
	return !l.bounded || seats <= l.max
}

// Tier is a pricing plan with a seat-count eligibility range and a
// per-seat monthly price. Tiers are defined at deployment time and
// immutable at runtime.
type Tier struct {
	// ID uniquely identifies the tier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Badge is an optional promotional label (empty when none)
	Badge string `json:"badge,omitempty"`

	// MinSeats is the inclusive minimum seat count
	MinSeats int `json:"min_seats"`

	// MaxSeats is the inclusive maximum seat count, possibly unbounded
	MaxSeats SeatLimit `json:"-"`

	// PricePerSeat is the monthly price per seat in whole currency units
	PricePerSeat int64 `json:"price_per_seat"`

	// Features is the tier's feature list, opaque to the engine
	Features []string `json:"features,omitempty"`
}

// Accepts reports whether seats falls inside the tier's range.
func (t Tier) Accepts(seats int) bool {
	return seats >= t.MinSeats && t.MaxSeats.Allows(seats)
}
