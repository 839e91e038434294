// Package params - Parameter-store implementations
// The engine's persistence port. The host environment decides where
// the parameter set lives; the engine only ever sees the Store
// interface.
package params

import (
	"seatwise/core/selection"
)

// Memory is an in-process parameter store. Used by hosts without
// durable parameters and by tests.
type Memory struct {
	params selection.ParamSet
	loaded bool
	saves  int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith creates a store pre-seeded with a parameter set.
func NewMemoryWith(p selection.ParamSet) *Memory {
	return &Memory{params: p, loaded: true}
}

// Load returns the held parameter set, if one was ever saved or seeded.
func (m *Memory) Load() (selection.ParamSet, bool) {
	return m.params, m.loaded
}

// Save replaces the held parameter set.
func (m *Memory) Save(p selection.ParamSet) error {
	m.params = p
	m.loaded = true
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	return m.saves
}
