// Package selection - Stateful reconciler
package selection

import (
	"go.uber.org/zap"

	"seatwise/core/types"
)

// Store is the parameter-persistence port. Implemented by whatever
// host environment embeds the engine (URL query string, memory, ...).
type Store interface {
	// Load returns the persisted parameter set, if any.
	Load() (ParamSet, bool)

	// Save replaces the persisted parameter set.
	Save(ParamSet) error
}

// Reconciler owns one session's selection state and keeps it mirrored
// to the parameter store. Single-threaded: each Dispatch runs to
// completion before the next event is accepted.
type Reconciler struct {
	reducer *Reducer
	store   Store
	log     *zap.Logger

	state types.SelectionState

	// lastSaved is what the store currently holds, kept to skip
	// writes that would echo it unchanged. Without the skip, a store
	// that notifies on change would re-trigger Loaded in a loop.
	lastSaved ParamSet
	hasSaved  bool
}

// NewReconciler builds a reconciler, loads any persisted parameters,
// and mirrors the resulting state back to the store.
func NewReconciler(reducer *Reducer, store Store, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reconciler{
		reducer: reducer,
		store:   store,
		log:     log,
		state:   reducer.Initial(),
	}
	if params, ok := store.Load(); ok {
		r.lastSaved = params
		r.hasSaved = true
		r.state = reducer.Reduce(r.state, Loaded{Params: params})
	}
	r.sync()
	return r
}

// State returns the current selection state.
func (r *Reconciler) State() types.SelectionState {
	return r.state
}

// Dispatch resolves one event into the next state, recomputes the
// presentation bundle, and re-serializes the state to the store
// (skipping the write when nothing changed).
func (r *Reconciler) Dispatch(ev Event) Outcome {
	r.state = r.reducer.Reduce(r.state, ev)
	outcome := r.reducer.Derive(r.state)
	r.sync()
	return outcome
}

func (r *Reconciler) sync() {
	encoded := Encode(r.state)
	if r.hasSaved && encoded == r.lastSaved {
		return
	}
	if err := r.store.Save(encoded); err != nil {
		// Persistence failures never fail a transition; the state
		// simply stays ahead of the store until the next write.
		r.log.Warn("parameter store save failed", zap.Error(err))
		return
	}
	r.lastSaved = encoded
	r.hasSaved = true
}
