// Package params - Query-string parameter store
package params

import (
	"net/url"

	"seatwise/core/selection"
	"seatwise/internal/errors"
)

// Query is a parameter store backed by a URL query string, the
// "shareable link" shape of the parameter set. Keys the engine does
// not own pass through writes untouched, so a host can keep its own
// parameters in the same string.
type Query struct {
	values url.Values
}

// ParseQuery creates a store from a raw query string (no leading "?").
func ParseQuery(raw string) (*Query, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, errors.Wrap(errors.TypeParams, "cannot parse query string", err)
	}
	return &Query{values: values}, nil
}

// NewQuery creates an empty query store.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Load returns the parameter set held in the query string. Reports
// false when none of the engine's keys are present.
func (q *Query) Load() (selection.ParamSet, bool) {
	p := selection.ParamSet{
		Tier:     q.values.Get(selection.ParamTier),
		Cadence:  q.values.Get(selection.ParamCadence),
		Seats:    q.values.Get(selection.ParamSeats),
		Timing:   q.values.Get(selection.ParamTiming),
		Category: q.values.Get(selection.ParamCategory),
	}
	return p, p != (selection.ParamSet{})
}

// Save writes the parameter set into the query string, dropping keys
// whose value is empty.
func (q *Query) Save(p selection.ParamSet) error {
	set := func(key, value string) {
		if value == "" {
			q.values.Del(key)
			return
		}
		q.values.Set(key, value)
	}
	set(selection.ParamTier, p.Tier)
	set(selection.ParamCadence, p.Cadence)
	set(selection.ParamSeats, p.Seats)
	set(selection.ParamTiming, p.Timing)
	set(selection.ParamCategory, p.Category)
	return nil
}

// Encode returns the canonical query string.
func (q *Query) Encode() string {
	return q.values.Encode()
}
