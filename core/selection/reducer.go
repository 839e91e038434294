// Package selection - Selection reducer
// The stateful core of the engine, written as a pure reducer: every
// external event resolves into a new consistent state, and derived
// values (validation, breakdown, ranking) are recomputed from scratch.
// Side effects live solely in the Reconciler.
package selection

import (
	"strconv"

	"github.com/shopspring/decimal"

	"seatwise/core/catalog"
	"seatwise/core/lookup"
	"seatwise/core/pricing"
	"seatwise/core/types"
	"seatwise/core/validate"
)

// Rules are the reducer's configured bounds and rates.
type Rules struct {
	// MaxSeats is the global seat ceiling; seat counts clamp to [1, MaxSeats]
	MaxSeats int

	// DefaultSeats is assumed when no usable seat count is persisted
	DefaultSeats int

	// UpfrontDiscountRate applies to upfront payment timing
	UpfrontDiscountRate decimal.Decimal

	// TaxRate is the VAT rate
	TaxRate decimal.Decimal
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		MaxSeats:            10000,
		DefaultSeats:        1,
		UpfrontDiscountRate: pricing.DefaultUpfrontDiscountRate,
		TaxRate:             pricing.DefaultTaxRate,
	}
}

// Outcome is the presentation bundle derived from a state: the
// resolved tier, its validation against the seat count, the price
// breakdown, and the cadence ranking. Never stored, always
// recomputable.
type Outcome struct {
	Tier       types.Tier             `json:"tier"`
	Validation types.ValidationResult `json:"validation"`
	Breakdown  types.Breakdown        `json:"breakdown"`
	Ranking    []types.CadenceCost    `json:"ranking"`
}

// Reducer resolves selection events against a validated catalog.
// It holds no mutable state; Reduce is a pure function.
type Reducer struct {
	cat   *catalog.Catalog
	rules Rules
}

// NewReducer creates a reducer over a validated catalog.
func NewReducer(cat *catalog.Catalog, rules Rules) *Reducer {
	return &Reducer{cat: cat, rules: rules}
}

// Catalog returns the reducer's catalog.
func (r *Reducer) Catalog() *catalog.Catalog {
	return r.cat
}

// Rules returns the reducer's rules.
func (r *Reducer) Rules() Rules {
	return r.rules
}

// Initial returns the default state: the recommended tier for the
// default seat count, first cadence, monthly timing, no override.
func (r *Reducer) Initial() types.SelectionState {
	seats := r.clamp(r.rules.DefaultSeats)
	return types.SelectionState{
		TierID:    lookup.TierForSeats(r.cat, seats).ID,
		Override:  false,
		Seats:     seats,
		CadenceID: r.cat.DefaultCadence().ID,
		Timing:    types.PayMonthly,
	}
}

// Reduce resolves one event into the next state. No event fails:
// malformed or unknown input is absorbed via fallbacks or ignored.
func (r *Reducer) Reduce(s types.SelectionState, ev Event) types.SelectionState {
	switch e := ev.(type) {
	case Loaded:
		return r.load(e.Params)

	case SeatsChanged:
		s.Seats = r.clamp(e.Seats)
		if !s.Override {
			s.TierID = lookup.TierForSeats(r.cat, s.Seats).ID
		}
		return s

	case TierPicked:
		// Unknown identifiers are a no-op, not an error.
		if tier, ok := lookup.TierByID(r.cat, e.TierID); ok {
			s.Override = true
			s.TierID = tier.ID
		}
		return s

	case RecommendationAdopted:
		s.Override = false
		s.TierID = lookup.TierForSeats(r.cat, s.Seats).ID
		return s

	case CadenceChanged:
		if cd, ok := r.cat.Cadence(e.CadenceID); ok {
			s.CadenceID = cd.ID
		}
		return s

	case TimingChanged:
		if e.Timing.Valid() {
			s.Timing = e.Timing
		}
		return s

	case CategoryChanged:
		s.Category = e.Category
		return s
	}
	return s
}

// Derive recomputes the presentation bundle for a state.
func (r *Reducer) Derive(s types.SelectionState) Outcome {
	tier, ok := r.cat.Tier(s.TierID)
	if !ok {
		// A reduced state always references a catalog tier; reaching
		// here means the state was built outside the reducer.
		tier = lookup.TierForSeats(r.cat, s.Seats)
	}
	cad, ok := r.cat.Cadence(s.CadenceID)
	if !ok {
		cad = r.cat.DefaultCadence()
	}

	in := pricing.Input{
		PricePerSeat:        tier.PricePerSeat,
		Seats:               s.Seats,
		Cadence:             cad,
		Timing:              s.Timing,
		UpfrontDiscountRate: r.rules.UpfrontDiscountRate,
		TaxRate:             r.rules.TaxRate,
	}

	return Outcome{
		Tier:       tier,
		Validation: validate.Check(tier, s.Seats),
		Breakdown:  pricing.Compute(in),
		Ranking:    pricing.Rank(in, r.cat.Cadences()),
	}
}

// load absorbs a persisted parameter set. Classification: a stored
// tier exactly matching the seat-count recommendation loads as AUTO;
// a stored tier differing from it loads as a user override (MANUAL);
// an unresolvable tier falls back to AUTO on the recommendation.
func (r *Reducer) load(p ParamSet) types.SelectionState {
	defaultTier := lookup.TierForSeats(r.cat, r.clamp(r.rules.DefaultSeats))

	seats, err := strconv.Atoi(p.Seats)
	if err != nil {
		seats = defaultTier.MinSeats
	}
	seats = r.clamp(seats)

	cadence := r.cat.DefaultCadence()
	if cd, ok := r.cat.Cadence(p.Cadence); ok {
		cadence = cd
	}

	timing := types.PayMonthly
	if t, ok := types.ParsePaymentTiming(p.Timing); ok {
		timing = t
	}

	s := types.SelectionState{
		Seats:     seats,
		CadenceID: cadence.ID,
		Timing:    timing,
		Category:  p.Category,
	}

	recommended := lookup.TierForSeats(r.cat, seats)
	if stored, ok := lookup.TierByID(r.cat, p.Tier); ok {
		s.TierID = stored.ID
		s.Override = stored.ID != recommended.ID
	} else {
		s.TierID = recommended.ID
		s.Override = false
	}
	return s
}

func (r *Reducer) clamp(seats int) int {
	if seats < 1 {
		return 1
	}
	if seats > r.rules.MaxSeats {
		return r.rules.MaxSeats
	}
	return seats
}
