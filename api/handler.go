// Package api - HTTP handlers for the pricing engine
// Handlers wrap the engine - they contain NO pricing logic. All logic
// is delegated to core packages.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"seatwise/adapters/params"
	"seatwise/core/lookup"
	"seatwise/core/pricing"
	"seatwise/core/selection"
	"seatwise/core/types"
	"seatwise/core/validate"
)

// Handler handles pricing requests
type Handler struct {
	reducer *selection.Reducer
}

// NewHandler creates a handler over a validated catalog.
func NewHandler(reducer *selection.Reducer) *Handler {
	return &Handler{reducer: reducer}
}

// HandleCatalog handles GET /catalog
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.reducer.Catalog()
	resp := CatalogResponse{
		Tiers:    make([]TierView, 0, len(cat.Tiers())),
		Cadences: make([]CadenceView, 0, len(cat.Cadences())),
	}
	for _, t := range cat.Tiers() {
		resp.Tiers = append(resp.Tiers, tierView(t))
	}
	for _, c := range cat.Cadences() {
		resp.Cadences = append(resp.Cadences, cadenceView(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleRecommendation handles GET /recommendation?seats=N
func (h *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	seats, err := strconv.Atoi(r.URL.Query().Get("seats"))
	if err != nil || seats < 1 {
		writeError(w, "INVALID_SEATS", "seats must be a positive integer", http.StatusBadRequest)
		return
	}
	tier := lookup.TierForSeats(h.reducer.Catalog(), seats)
	writeJSON(w, http.StatusOK, RecommendationResponse{
		Seats:      seats,
		Tier:       tierView(tier),
		Validation: validate.Check(tier, seats),
	})
}

// HandleQuote handles POST /quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	tier, cadence, timing, ok := h.resolveQuote(w, req.Tier, req.Seats, req.Cadence, req.Timing)
	if !ok {
		return
	}

	in := pricing.Input{
		PricePerSeat:        tier.PricePerSeat,
		Seats:               req.Seats,
		Cadence:             cadence,
		Timing:              timing,
		UpfrontDiscountRate: h.reducer.Rules().UpfrontDiscountRate,
		TaxRate:             h.reducer.Rules().TaxRate,
	}

	writeJSON(w, http.StatusOK, QuoteResponse{
		Tier:       tierView(tier),
		Seats:      req.Seats,
		Cadence:    cadenceView(cadence),
		Timing:     timing.String(),
		Validation: validate.Check(tier, req.Seats),
		Breakdown:  pricing.Compute(in).Rounded(),
	})
}

// HandleRank handles POST /rank
func (h *Handler) HandleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	cat := h.reducer.Catalog()
	tier, cadence, timing, ok := h.resolveQuote(w, req.Tier, req.Seats, cat.DefaultCadence().ID, req.Timing)
	if !ok {
		return
	}

	in := pricing.Input{
		PricePerSeat:        tier.PricePerSeat,
		Seats:               req.Seats,
		Cadence:             cadence,
		Timing:              timing,
		UpfrontDiscountRate: h.reducer.Rules().UpfrontDiscountRate,
		TaxRate:             h.reducer.Rules().TaxRate,
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Tier:    tierView(tier),
		Seats:   req.Seats,
		Timing:  timing.String(),
		Ranking: rankEntries(pricing.Rank(in, cat.Cadences())),
	})
}

// HandleDispatch handles POST /selection/dispatch
func (h *Handler) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	var req DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	ev, ok := eventFromView(req.Event)
	if !ok {
		writeError(w, "UNKNOWN_EVENT", "unknown event type: "+req.Event.Type, http.StatusBadRequest)
		return
	}

	state := h.reducer.Initial()
	if req.State != nil {
		state = *req.State
	}

	state = h.reducer.Reduce(state, ev)
	outcome := h.reducer.Derive(state)
	set := selection.Encode(state)

	link := params.NewQuery()
	_ = link.Save(set)

	writeJSON(w, http.StatusOK, DispatchResponse{
		State:      state,
		Params:     set,
		Link:       link.Encode(),
		Tier:       tierView(outcome.Tier),
		Validation: outcome.Validation,
		Breakdown:  outcome.Breakdown.Rounded(),
		Ranking:    rankEntries(outcome.Ranking),
	})
}

// resolveQuote resolves the shared tier/cadence/timing inputs of quote
// and rank requests, writing the error response itself on failure.
func (h *Handler) resolveQuote(w http.ResponseWriter, tierID string, seats int, cadenceID, timing string) (types.Tier, types.Cadence, types.PaymentTiming, bool) {
	cat := h.reducer.Catalog()

	tier, found := lookup.TierByID(cat, tierID)
	if !found {
		writeError(w, "UNKNOWN_TIER", "unknown tier: "+tierID, http.StatusNotFound)
		return types.Tier{}, types.Cadence{}, "", false
	}
	if seats < 1 {
		writeError(w, "INVALID_SEATS", "seats must be a positive integer", http.StatusBadRequest)
		return types.Tier{}, types.Cadence{}, "", false
	}
	cadence, found := cat.Cadence(cadenceID)
	if !found {
		writeError(w, "UNKNOWN_CADENCE", "unknown cadence: "+cadenceID, http.StatusNotFound)
		return types.Tier{}, types.Cadence{}, "", false
	}
	t := types.PayMonthly
	if timing != "" {
		var ok bool
		if t, ok = types.ParsePaymentTiming(timing); !ok {
			writeError(w, "INVALID_TIMING", "unknown payment timing: "+timing, http.StatusBadRequest)
			return types.Tier{}, types.Cadence{}, "", false
		}
	}
	return tier, cadence, t, true
}

// eventFromView maps a wire event to a reducer event.
func eventFromView(v EventView) (selection.Event, bool) {
	switch v.Type {
	case EventLoaded:
		var p selection.ParamSet
		if v.Params != nil {
			p = *v.Params
		}
		return selection.Loaded{Params: p}, true
	case EventSeatsChanged:
		return selection.SeatsChanged{Seats: v.Seats}, true
	case EventTierPicked:
		return selection.TierPicked{TierID: v.Tier}, true
	case EventRecommendationAdopted:
		return selection.RecommendationAdopted{}, true
	case EventCadenceChanged:
		return selection.CadenceChanged{CadenceID: v.Cadence}, true
	case EventTimingChanged:
		return selection.TimingChanged{Timing: types.PaymentTiming(v.Timing)}, true
	case EventCategoryChanged:
		return selection.CategoryChanged{Category: v.Category}, true
	}
	return nil, false
}
