// Package types - Billing cadence and payment timing
package types

import "github.com/shopspring/decimal"

// Cadence is a billing period with an associated commitment discount.
// Defined at deployment time, immutable at runtime.
type Cadence struct {
	// ID uniquely identifies the cadence
	ID string `json:"id"`

	// Months is the cadence duration in months (> 0)
	Months int `json:"months"`

	// Discount is the rate applied to the per-seat monthly price for
	// committing to this cadence, in [0, 1)
	Discount decimal.Decimal `json:"discount"`
}

// PaymentTiming is how a cadence's total is paid: in monthly
// installments or as a single upfront payment.
type PaymentTiming string

const (
	// PayMonthly pays the cadence total in monthly installments
	PayMonthly PaymentTiming = "monthly"

	// PayUpfront pays the cadence total once, with an upfront discount
	PayUpfront PaymentTiming = "upfront"
)

// Valid reports whether the timing is a known value.
func (t PaymentTiming) Valid() bool {
	return t == PayMonthly || t == PayUpfront
}

// String returns the string representation.
func (t PaymentTiming) String() string {
	return string(t)
}

// ParsePaymentTiming parses a timing string. Unknown values report ok=false.
func ParsePaymentTiming(s string) (PaymentTiming, bool) {
	t := PaymentTiming(s)
	return t, t.Valid()
}
