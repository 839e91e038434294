// Package catalog - Catalog validation
// A structurally broken catalog is a deployment defect and must fail
// fast at startup, never per-request.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"seatwise/internal/errors"
)

// ValidationRule is a catalog validation rule.
type ValidationRule func(*Catalog) []error

// DefaultValidationRules returns the standard validation rules.
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateTiers,
		validateTierOrdering,
		validateCadences,
		validateAliases,
	}
}

// Validate checks the catalog against validation rules and returns
// every violation found.
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error
	for _, rule := range rules {
		errs = append(errs, rule(c)...)
	}
	return errs
}

// MustValidate runs the default rules and returns a single catalog
// error aggregating the violations, or nil. Callers treat a non-nil
// result as fatal.
func (c *Catalog) MustValidate() error {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) == 0 {
		return nil
	}
	msg := errs[0].Error()
	if len(errs) > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, len(errs)-1)
	}
	return errors.New(errors.TypeCatalog, msg)
}

func validateTiers(c *Catalog) []error {
	var errs []error
	if len(c.tiers) == 0 {
		return []error{fmt.Errorf("catalog has no tiers")}
	}
	seen := make(map[string]bool, len(c.tiers))
	for _, t := range c.tiers {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tier %q: empty id", t.Name))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("tier %s: duplicate id", t.ID))
		}
		seen[t.ID] = true
		if t.MinSeats < 1 {
			errs = append(errs, fmt.Errorf("tier %s: minimum seats must be >= 1, got %d", t.ID, t.MinSeats))
		}
		if max, ok := t.MaxSeats.Max(); ok && max < t.MinSeats {
			errs = append(errs, fmt.Errorf("tier %s: maximum seats %d below minimum %d", t.ID, max, t.MinSeats))
		}
		if t.PricePerSeat <= 0 {
			errs = append(errs, fmt.Errorf("tier %s: price per seat must be positive, got %d", t.ID, t.PricePerSeat))
		}
	}
	return errs
}

func validateTierOrdering(c *Catalog) []error {
	var errs []error
	for i := 1; i < len(c.tiers); i++ {
		prev, cur := c.tiers[i-1], c.tiers[i]
		if cur.MinSeats <= prev.MinSeats {
			errs = append(errs, fmt.Errorf("tier %s: minimum seats %d not above preceding tier %s (%d)",
				cur.ID, cur.MinSeats, prev.ID, prev.MinSeats))
		}
	}
	return errs
}

func validateCadences(c *Catalog) []error {
	var errs []error
	if len(c.cadences) == 0 {
		return []error{fmt.Errorf("catalog has no cadences")}
	}
	one := decimal.NewFromInt(1)
	seen := make(map[string]bool, len(c.cadences))
	for _, cd := range c.cadences {
		if cd.ID == "" {
			errs = append(errs, fmt.Errorf("cadence with empty id"))
			continue
		}
		if seen[cd.ID] {
			errs = append(errs, fmt.Errorf("cadence %s: duplicate id", cd.ID))
		}
		seen[cd.ID] = true
		if cd.Months <= 0 {
			errs = append(errs, fmt.Errorf("cadence %s: months must be > 0, got %d", cd.ID, cd.Months))
		}
		if cd.Discount.IsNegative() || cd.Discount.GreaterThanOrEqual(one) {
			errs = append(errs, fmt.Errorf("cadence %s: discount %s outside [0, 1)", cd.ID, cd.Discount))
		}
	}
	return errs
}

func validateAliases(c *Catalog) []error {
	var errs []error
	for name, target := range c.aliases {
		if _, ok := c.Tier(target); !ok {
			errs = append(errs, fmt.Errorf("alias %s: target tier %s does not exist", name, target))
		}
		if _, ok := c.Tier(name); ok {
			errs = append(errs, fmt.Errorf("alias %s: shadows an existing tier id", name))
		}
	}
	return errs
}
