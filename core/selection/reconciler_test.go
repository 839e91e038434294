package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatwise/core/catalog"
	"seatwise/core/types"
)

// countingStore wraps the reconciler's port to observe writes.
type countingStore struct {
	params ParamSet
	loaded bool
	saves  int
}

func (s *countingStore) Load() (ParamSet, bool) {
	return s.params, s.loaded
}

func (s *countingStore) Save(p ParamSet) error {
	s.params = p
	s.loaded = true
	s.saves++
	return nil
}

func newTestReconciler(store Store) *Reconciler {
	return NewReconciler(NewReducer(catalog.Default(), DefaultRules()), store, nil)
}

func TestReconciler_InitialSync(t *testing.T) {
	store := &countingStore{}
	rec := newTestReconciler(store)

	// An empty store gets the default state written once.
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, Encode(rec.State()), store.params)
}

func TestReconciler_LoadsPersistedState(t *testing.T) {
	store := &countingStore{
		params: ParamSet{Tier: "campus", Seats: "60", Cadence: "annual", Timing: "upfront", Category: "school"},
		loaded: true,
	}
	rec := newTestReconciler(store)

	state := rec.State()
	assert.Equal(t, "campus", state.TierID)
	assert.True(t, state.Override, "stored tier differing from recommendation loads as override")
	assert.Equal(t, 60, state.Seats)
	assert.Equal(t, "annual", state.CadenceID)
	assert.Equal(t, types.PayUpfront, state.Timing)
	assert.Equal(t, "school", state.Category)

	// The loaded parameters already match the state; no echo write.
	assert.Equal(t, 0, store.saves)
}

func TestReconciler_NormalizationWritesBack(t *testing.T) {
	// Malformed parameters normalize to defaults, which differ from
	// the stored value and must be written back once.
	store := &countingStore{
		params: ParamSet{Tier: "unknown", Seats: "abc", Cadence: "bogus"},
		loaded: true,
	}
	rec := newTestReconciler(store)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, Encode(rec.State()), store.params)
}

func TestReconciler_DispatchSyncs(t *testing.T) {
	store := &countingStore{}
	rec := newTestReconciler(store)
	base := store.saves

	out := rec.Dispatch(SeatsChanged{Seats: 120})
	require.Equal(t, base+1, store.saves)
	assert.Equal(t, "120", store.params.Seats)
	assert.Equal(t, "growth", store.params.Tier)
	assert.True(t, out.Validation.Valid)
	assert.Equal(t, "growth", out.Tier.ID)
	require.NotEmpty(t, out.Ranking)
	assert.Equal(t, "annual", out.Ranking[0].Cadence.ID, "cheapest cadence first")
}

func TestReconciler_SkipsUnchangedWrites(t *testing.T) {
	store := &countingStore{}
	rec := newTestReconciler(store)

	rec.Dispatch(SeatsChanged{Seats: 120})
	base := store.saves

	// Identical outcomes must not be re-written, or a store that
	// notifies on change would feed the engine its own echo forever.
	rec.Dispatch(SeatsChanged{Seats: 120})
	assert.Equal(t, base, store.saves)

	rec.Dispatch(TierPicked{TierID: "platinum"}) // no-op event
	assert.Equal(t, base, store.saves)

	rec.Dispatch(CategoryChanged{Category: ""}) // already empty
	assert.Equal(t, base, store.saves)

	// A real change writes again.
	rec.Dispatch(CadenceChanged{CadenceID: "annual"})
	assert.Equal(t, base+1, store.saves)
}

func TestReconciler_EventSequence(t *testing.T) {
	store := &countingStore{}
	rec := newTestReconciler(store)

	// A slider drag arrives as a strict sequence of discrete events;
	// every one is processed in order.
	for seats := 45; seats <= 55; seats++ {
		out := rec.Dispatch(SeatsChanged{Seats: seats})
		require.True(t, out.Validation.Valid, "auto state must always validate (seats=%d)", seats)
	}

	state := rec.State()
	assert.Equal(t, 55, state.Seats)
	assert.Equal(t, "growth", state.TierID)
	assert.Equal(t, "55", store.params.Seats)
}
