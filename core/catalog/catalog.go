// Package catalog - Authoritative tier and cadence catalog
// Defines the canonical ordered tier list, the cadence table, and the
// legacy tier-alias map. This is the source of truth for tier lookup.
package catalog

import (
	"seatwise/core/types"
)

// Catalog holds the deployment-time pricing data: tiers ordered by
// minimum seats ascending, the cadence table in display order, and a
// finite map from deprecated tier names to current identifiers.
// Immutable after construction.
type Catalog struct {
	tiers    []types.Tier
	cadences []types.Cadence
	aliases  map[string]string
}

// New creates a catalog. Call Validate before using it; a catalog that
// fails validation is a deployment defect, not a runtime input problem.
func New(tiers []types.Tier, cadences []types.Cadence, aliases map[string]string) *Catalog {
	if aliases == nil {
		aliases = map[string]string{}
	}
	return &Catalog{tiers: tiers, cadences: cadences, aliases: aliases}
}

// Tiers returns the ordered tier list.
func (c *Catalog) Tiers() []types.Tier {
	return c.tiers
}

// Tier returns the tier with the given identifier. Aliases are not
// applied here; see ResolveAlias.
func (c *Catalog) Tier(id string) (types.Tier, bool) {
	for _, t := range c.tiers {
		if t.ID == id {
			return t, true
		}
	}
	return types.Tier{}, false
}

// Lowest returns the first tier (smallest minimum seats).
func (c *Catalog) Lowest() types.Tier {
	return c.tiers[0]
}

// Highest returns the last tier (greatest minimum seats).
func (c *Catalog) Highest() types.Tier {
	return c.tiers[len(c.tiers)-1]
}

// Cadences returns the cadence table in display order.
func (c *Catalog) Cadences() []types.Cadence {
	return c.cadences
}

// Cadence returns the cadence with the given identifier.
func (c *Catalog) Cadence(id string) (types.Cadence, bool) {
	for _, cd := range c.cadences {
		if cd.ID == id {
			return cd, true
		}
	}
	return types.Cadence{}, false
}

// DefaultCadence returns the table's first entry, the fallback for
// absent or malformed persisted cadences.
func (c *Catalog) DefaultCadence() types.Cadence {
	return c.cadences[0]
}

// ResolveAlias maps a deprecated external tier name to its current
// identifier. Unmapped names pass through unchanged.
func (c *Catalog) ResolveAlias(name string) string {
	if target, ok := c.aliases[name]; ok {
		return target
	}
	return name
}

// Aliases returns the legacy-alias map.
func (c *Catalog) Aliases() map[string]string {
	return c.aliases
}
