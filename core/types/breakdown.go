// Package types - Price breakdown values
package types

import "github.com/shopspring/decimal"

// Savings itemizes the discounts contained in a breakdown.
type Savings struct {
	// FromCadence is what the cadence commitment discount saved
	FromCadence decimal.Decimal `json:"from_cadence"`

	// FromUpfront is what the upfront payment discount saved
	FromUpfront decimal.Decimal `json:"from_upfront"`

	// Total is the sum of all savings
	Total decimal.Decimal `json:"total"`
}

// Breakdown is a tax- and discount-inclusive price breakdown for one
// (price, seats, cadence, timing) tuple. Purely derived; recomputed on
// every relevant input change and never stored.
//
// All fields are exact intermediates. Rounding to whole currency units
// happens only at the presentation boundary via Rounded.
type Breakdown struct {
	// Subtotal is the pre-tax amount for the full cadence period
	Subtotal decimal.Decimal `json:"subtotal"`

	// VATAmount is the tax on the subtotal
	VATAmount decimal.Decimal `json:"vat_amount"`

	// Total is subtotal plus tax
	Total decimal.Decimal `json:"total"`

	// TotalPerMonth is the tax-inclusive total amortized over the
	// cadence months. This is the headline recurring figure regardless
	// of payment timing, not a cash-flow statement: an upfront payer
	// still pays Total once.
	TotalPerMonth decimal.Decimal `json:"total_per_month"`

	// Savings itemizes cadence and upfront discounts
	Savings Savings `json:"savings"`
}

// RoundedSavings is Savings rounded to whole currency units.
type RoundedSavings struct {
	FromCadence int64 `json:"from_cadence"`
	FromUpfront int64 `json:"from_upfront"`
	Total       int64 `json:"total"`
}

// RoundedBreakdown is a Breakdown rounded to whole currency units for
// display. The currency has no fractional sub-units.
type RoundedBreakdown struct {
	Subtotal      int64          `json:"subtotal"`
	VATAmount     int64          `json:"vat_amount"`
	Total         int64          `json:"total"`
	TotalPerMonth int64          `json:"total_per_month"`
	Savings       RoundedSavings `json:"savings"`
}

// Rounded returns the breakdown rounded to whole currency units.
// Each figure is rounded independently from its exact value, so
// rounding error never compounds across fields.
func (b Breakdown) Rounded() RoundedBreakdown {
	return RoundedBreakdown{
		Subtotal:      round(b.Subtotal),
		VATAmount:     round(b.VATAmount),
		Total:         round(b.Total),
		TotalPerMonth: round(b.TotalPerMonth),
		Savings: RoundedSavings{
			FromCadence: round(b.Savings.FromCadence),
			FromUpfront: round(b.Savings.FromUpfront),
			Total:       round(b.Savings.Total),
		},
	}
}

func round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// CadenceCost is one entry of a cadence ranking.
type CadenceCost struct {
	// Cadence is the ranked cadence
	Cadence Cadence `json:"cadence"`

	// MonthlyCost is the tax-inclusive amortized monthly total
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// SavingsVsBaseline is the monthly saving against the costliest
	// cadence in the same ranking
	SavingsVsBaseline decimal.Decimal `json:"savings_vs_baseline"`

	// SavingsPercent is SavingsVsBaseline as a percentage of the baseline
	SavingsPercent decimal.Decimal `json:"savings_percent"`
}
