// Package api - Request/response contracts
package api

import (
	"seatwise/core/selection"
	"seatwise/core/types"
)

// TierView is the wire form of a catalog tier. MaxSeats is null for
// unbounded tiers.
type TierView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Badge        string   `json:"badge,omitempty"`
	MinSeats     int      `json:"min_seats"`
	MaxSeats     *int     `json:"max_seats"`
	PricePerSeat int64    `json:"price_per_seat"`
	Features     []string `json:"features,omitempty"`
}

// CadenceView is the wire form of a cadence table entry.
type CadenceView struct {
	ID       string `json:"id"`
	Months   int    `json:"months"`
	Discount string `json:"discount"`
}

// CatalogResponse lists the deployed tiers and cadences.
type CatalogResponse struct {
	Tiers    []TierView    `json:"tiers"`
	Cadences []CadenceView `json:"cadences"`
}

// RecommendationResponse is the tier recommended for a seat count.
type RecommendationResponse struct {
	Seats      int                    `json:"seats"`
	Tier       TierView               `json:"tier"`
	Validation types.ValidationResult `json:"validation"`
}

// QuoteRequest asks for a price breakdown. Tier may be a legacy alias.
type QuoteRequest struct {
	Tier    string `json:"tier"`
	Seats   int    `json:"seats"`
	Cadence string `json:"cadence"`
	Timing  string `json:"timing"`
}

// QuoteResponse carries the breakdown rounded to whole currency units.
type QuoteResponse struct {
	Tier       TierView               `json:"tier"`
	Seats      int                    `json:"seats"`
	Cadence    CadenceView            `json:"cadence"`
	Timing     string                 `json:"timing"`
	Validation types.ValidationResult `json:"validation"`
	Breakdown  types.RoundedBreakdown `json:"breakdown"`
}

// RankRequest asks for the cadence ranking of a tier at a seat count.
type RankRequest struct {
	Tier   string `json:"tier"`
	Seats  int    `json:"seats"`
	Timing string `json:"timing"`
}

// RankEntry is one ranked cadence, cheapest first.
type RankEntry struct {
	Cadence        CadenceView `json:"cadence"`
	MonthlyCost    int64       `json:"monthly_cost"`
	Savings        int64       `json:"savings"`
	SavingsPercent string      `json:"savings_percent"`
}

// RankResponse is the full cadence ranking.
type RankResponse struct {
	Tier    TierView    `json:"tier"`
	Seats   int         `json:"seats"`
	Timing  string      `json:"timing"`
	Ranking []RankEntry `json:"ranking"`
}

// EventView is the wire form of a selection event, discriminated by
// Type. Only the fields of the named event are read.
type EventView struct {
	Type     string              `json:"type"`
	Seats    int                 `json:"seats,omitempty"`
	Tier     string              `json:"tier,omitempty"`
	Cadence  string              `json:"cadence,omitempty"`
	Timing   string              `json:"timing,omitempty"`
	Category string              `json:"category,omitempty"`
	Params   *selection.ParamSet `json:"params,omitempty"`
}

// Event type discriminators.
const (
	EventLoaded                = "loaded"
	EventSeatsChanged          = "seats_changed"
	EventTierPicked            = "tier_picked"
	EventRecommendationAdopted = "recommendation_adopted"
	EventCadenceChanged        = "cadence_changed"
	EventTimingChanged         = "timing_changed"
	EventCategoryChanged       = "category_changed"
)

// DispatchRequest applies one event to a selection state. A nil state
// starts from the engine's initial state.
type DispatchRequest struct {
	State *types.SelectionState `json:"state"`
	Event EventView             `json:"event"`
}

// DispatchResponse carries the next state, the presentation bundle,
// and the parameter set the host should persist. Link is the same
// parameter set as a query string, ready to hang off a share URL.
type DispatchResponse struct {
	State      types.SelectionState   `json:"state"`
	Params     selection.ParamSet     `json:"params"`
	Link       string                 `json:"link"`
	Tier       TierView               `json:"tier"`
	Validation types.ValidationResult `json:"validation"`
	Breakdown  types.RoundedBreakdown `json:"breakdown"`
	Ranking    []RankEntry            `json:"ranking"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
