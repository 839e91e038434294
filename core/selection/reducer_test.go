package selection

import (
	"testing"

	"seatwise/core/catalog"
	"seatwise/core/types"
)

func testReducer() *Reducer {
	return NewReducer(catalog.Default(), DefaultRules())
}

// TestInitialState derives the default state from the rules
func TestInitialState(t *testing.T) {
	r := testReducer()
	s := r.Initial()

	if s.Override {
		t.Error("initial state must not be an override")
	}
	if s.TierID != "starter" {
		t.Errorf("expected starter for the default seat count, got %s", s.TierID)
	}
	if s.Seats != 1 {
		t.Errorf("expected default seats 1, got %d", s.Seats)
	}
	if s.CadenceID != "monthly" {
		t.Errorf("expected first cadence as default, got %s", s.CadenceID)
	}
	if s.Timing != types.PayMonthly {
		t.Errorf("expected monthly timing, got %s", s.Timing)
	}
}

// TestSeatsChangedTracksRecommendation proves seat changes retarget
// the tier while no override is active
func TestSeatsChangedTracksRecommendation(t *testing.T) {
	r := testReducer()
	s := r.Initial()

	tests := []struct {
		seats    int
		expected string
	}{
		{seats: 30, expected: "starter"},
		{seats: 60, expected: "growth"},
		{seats: 250, expected: "campus"},
		{seats: 49, expected: "starter"},
	}
	for _, tt := range tests {
		s = r.Reduce(s, SeatsChanged{Seats: tt.seats})
		if s.TierID != tt.expected {
			t.Errorf("seats %d: expected tier %s, got %s", tt.seats, tt.expected, s.TierID)
		}
		if s.Override {
			t.Errorf("seats %d: override flag must stay off", tt.seats)
		}
	}
}

// TestSeatsClamped clamps out-of-range seat counts instead of rejecting
func TestSeatsClamped(t *testing.T) {
	r := testReducer()

	s := r.Reduce(r.Initial(), SeatsChanged{Seats: 0})
	if s.Seats != 1 {
		t.Errorf("expected clamp to 1, got %d", s.Seats)
	}

	s = r.Reduce(s, SeatsChanged{Seats: -7})
	if s.Seats != 1 {
		t.Errorf("expected clamp to 1, got %d", s.Seats)
	}

	s = r.Reduce(s, SeatsChanged{Seats: 99999999})
	if s.Seats != DefaultRules().MaxSeats {
		t.Errorf("expected clamp to %d, got %d", DefaultRules().MaxSeats, s.Seats)
	}
}

// TestOverrideHysteresis walks the pick/adopt cycle: an explicit pick
// sticks through seat changes, adopting the recommendation releases it
func TestOverrideHysteresis(t *testing.T) {
	r := testReducer()
	s := r.Reduce(r.Initial(), SeatsChanged{Seats: 60})

	if s.TierID != "growth" {
		t.Fatalf("expected growth recommended for 60 seats, got %s", s.TierID)
	}

	// Explicit pick of an incompatible tier enters override.
	s = r.Reduce(s, TierPicked{TierID: "starter"})
	if !s.Override || s.TierID != "starter" {
		t.Fatalf("expected override on starter, got override=%v tier=%s", s.Override, s.TierID)
	}

	out := r.Derive(s)
	if out.Validation.Valid {
		t.Error("expected validation failure for starter at 60 seats")
	}
	if out.Validation.ReasonKey != types.ReasonAboveMaximum {
		t.Errorf("expected above-maximum reason, got %s", out.Validation.ReasonKey)
	}
	if out.Validation.ReasonParams.Tier != "Starter" || out.Validation.ReasonParams.Max != 49 {
		t.Errorf("unexpected reason params: %+v", out.Validation.ReasonParams)
	}

	// Seat changes leave the override tier alone.
	s = r.Reduce(s, SeatsChanged{Seats: 300})
	if s.TierID != "starter" || !s.Override {
		t.Errorf("override must survive seat changes, got override=%v tier=%s", s.Override, s.TierID)
	}

	// Adopting the recommendation releases the override.
	s = r.Reduce(s, RecommendationAdopted{})
	if s.Override {
		t.Error("expected override released")
	}
	if s.TierID != "campus" {
		t.Errorf("expected campus recommended for 300 seats, got %s", s.TierID)
	}
	if out := r.Derive(s); !out.Validation.Valid {
		t.Error("adopted recommendation must validate")
	}
}

// TestTierPickedUnknownIsNoOp ignores unknown identifiers
func TestTierPickedUnknownIsNoOp(t *testing.T) {
	r := testReducer()
	before := r.Reduce(r.Initial(), SeatsChanged{Seats: 60})

	after := r.Reduce(before, TierPicked{TierID: "platinum"})
	if after != before {
		t.Errorf("unknown tier pick must not change state: %+v -> %+v", before, after)
	}
}

// TestTierPickedResolvesAlias accepts legacy names in picks
func TestTierPickedResolvesAlias(t *testing.T) {
	r := testReducer()
	s := r.Reduce(r.Initial(), TierPicked{TierID: "premium"})

	if s.TierID != "campus" || !s.Override {
		t.Errorf("expected override on campus via alias, got override=%v tier=%s", s.Override, s.TierID)
	}
}

// TestBillingFieldEventsLeaveSelectionAlone proves cadence, timing and
// category changes never touch the tier or the override flag
func TestBillingFieldEventsLeaveSelectionAlone(t *testing.T) {
	r := testReducer()
	s := r.Reduce(r.Initial(), SeatsChanged{Seats: 60})
	s = r.Reduce(s, TierPicked{TierID: "starter"})

	events := []Event{
		CadenceChanged{CadenceID: "annual"},
		TimingChanged{Timing: types.PayUpfront},
		CategoryChanged{Category: "university"},
	}
	for _, ev := range events {
		s = r.Reduce(s, ev)
		if s.TierID != "starter" || !s.Override {
			t.Errorf("%T: selection changed to override=%v tier=%s", ev, s.Override, s.TierID)
		}
	}

	if s.CadenceID != "annual" || s.Timing != types.PayUpfront || s.Category != "university" {
		t.Errorf("billing fields not applied: %+v", s)
	}
}

// TestUnknownBillingValuesIgnored keeps the current values on unknown
// cadence or timing
func TestUnknownBillingValuesIgnored(t *testing.T) {
	r := testReducer()
	s := r.Initial()

	s = r.Reduce(s, CadenceChanged{CadenceID: "weekly"})
	if s.CadenceID != "monthly" {
		t.Errorf("unknown cadence must be ignored, got %s", s.CadenceID)
	}

	s = r.Reduce(s, TimingChanged{Timing: "biweekly"})
	if s.Timing != types.PayMonthly {
		t.Errorf("unknown timing must be ignored, got %s", s.Timing)
	}
}

// TestLoadedClassification applies the hysteresis rule: a stored tier
// matching the recommendation loads as auto, a different one as override
func TestLoadedClassification(t *testing.T) {
	r := testReducer()

	tests := []struct {
		name         string
		params       ParamSet
		expectedTier string
		override     bool
	}{
		{
			name:         "tier matches recommendation",
			params:       ParamSet{Tier: "growth", Seats: "60"},
			expectedTier: "growth",
			override:     false,
		},
		{
			name:         "tier differs from recommendation",
			params:       ParamSet{Tier: "campus", Seats: "60"},
			expectedTier: "campus",
			override:     true,
		},
		{
			name:         "legacy alias matching recommendation",
			params:       ParamSet{Tier: "standard", Seats: "60"},
			expectedTier: "growth",
			override:     false,
		},
		{
			name:         "unknown tier falls back to recommendation",
			params:       ParamSet{Tier: "platinum", Seats: "60"},
			expectedTier: "growth",
			override:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := r.Reduce(r.Initial(), Loaded{Params: tt.params})
			if s.TierID != tt.expectedTier {
				t.Errorf("expected tier %s, got %s", tt.expectedTier, s.TierID)
			}
			if s.Override != tt.override {
				t.Errorf("expected override=%v, got %v", tt.override, s.Override)
			}
		})
	}
}

// TestLoadedMalformedFallbacks absorbs a fully malformed parameter set
// without failing
func TestLoadedMalformedFallbacks(t *testing.T) {
	r := testReducer()
	s := r.Reduce(r.Initial(), Loaded{Params: ParamSet{
		Tier:     "unknown",
		Seats:    "abc",
		Cadence:  "bogus",
		Timing:   "someday",
		Category: "X",
	}})

	if s.Override {
		t.Error("fallback state must not be an override")
	}
	if s.TierID != "starter" {
		t.Errorf("expected default tier starter, got %s", s.TierID)
	}
	if s.Seats != 1 {
		t.Errorf("expected default tier minimum seats, got %d", s.Seats)
	}
	if s.CadenceID != "monthly" {
		t.Errorf("expected default cadence, got %s", s.CadenceID)
	}
	if s.Timing != types.PayMonthly {
		t.Errorf("expected default timing, got %s", s.Timing)
	}
	if s.Category != "X" {
		t.Errorf("category passes through opaquely, got %q", s.Category)
	}

	if out := r.Derive(s); !out.Validation.Valid {
		t.Error("fallback state must validate")
	}
}

// TestLoadedSeatsClamped clamps numeric but out-of-range stored seats
func TestLoadedSeatsClamped(t *testing.T) {
	r := testReducer()

	s := r.Reduce(r.Initial(), Loaded{Params: ParamSet{Seats: "-5"}})
	if s.Seats != 1 {
		t.Errorf("expected clamp to 1, got %d", s.Seats)
	}

	s = r.Reduce(r.Initial(), Loaded{Params: ParamSet{Seats: "123456789"}})
	if s.Seats != DefaultRules().MaxSeats {
		t.Errorf("expected clamp to %d, got %d", DefaultRules().MaxSeats, s.Seats)
	}
}

// TestRoundTrip serializes a state and loads it back, reproducing the
// selection, override classification, and billing fields
func TestRoundTrip(t *testing.T) {
	r := testReducer()

	states := []types.SelectionState{}

	// Auto state tracking the recommendation.
	s := r.Reduce(r.Initial(), SeatsChanged{Seats: 120})
	s = r.Reduce(s, CadenceChanged{CadenceID: "annual"})
	s = r.Reduce(s, TimingChanged{Timing: types.PayUpfront})
	s = r.Reduce(s, CategoryChanged{Category: "school"})
	states = append(states, s)

	// Override state differing from the recommendation.
	s = r.Reduce(s, TierPicked{TierID: "campus"})
	states = append(states, s)

	for _, original := range states {
		loaded := r.Reduce(r.Initial(), Loaded{Params: Encode(original)})
		if loaded != original {
			t.Errorf("round trip diverged:\noriginal: %+v\nloaded:   %+v", original, loaded)
		}
	}
}
