// Package pricing - Price breakdown calculation
// Computes the tax- and discount-inclusive breakdown for a
// (price, seats, cadence, timing) tuple. All arithmetic is exact
// decimal; multiplications happen before any rounding and outputs stay
// unrounded until the presentation boundary (types.Breakdown.Rounded).
package pricing

import (
	"github.com/shopspring/decimal"

	"seatwise/core/types"
)

// Package defaults, used when the host supplies no configured rates.
var (
	// DefaultUpfrontDiscountRate is the discount for paying a full
	// cadence period upfront
	DefaultUpfrontDiscountRate = decimal.RequireFromString("0.05")

	// DefaultTaxRate is the VAT rate applied to subtotals
	DefaultTaxRate = decimal.RequireFromString("0.19")
)

// Input is one breakdown computation request. Zero rates mean zero;
// use NewInput for the package defaults.
type Input struct {
	// PricePerSeat is the monthly per-seat price in whole currency units
	PricePerSeat int64

	// Seats is the billable seat count (>= 1)
	Seats int

	// Cadence is the billing cadence
	Cadence types.Cadence

	// Timing is the payment timing
	Timing types.PaymentTiming

	// UpfrontDiscountRate applies when Timing is upfront
	UpfrontDiscountRate decimal.Decimal

	// TaxRate is the VAT rate
	TaxRate decimal.Decimal
}

// NewInput builds an Input carrying the package default rates.
func NewInput(pricePerSeat int64, seats int, cadence types.Cadence, timing types.PaymentTiming) Input {
	return Input{
		PricePerSeat:        pricePerSeat,
		Seats:               seats,
		Cadence:             cadence,
		Timing:              timing,
		UpfrontDiscountRate: DefaultUpfrontDiscountRate,
		TaxRate:             DefaultTaxRate,
	}
}

// Compute calculates the breakdown. Deterministic, no I/O.
//
// Order matters for rounding fidelity: the cadence discount applies to
// the monthly base, the upfront discount to the period subtotal, and
// tax to whatever remains. With zero rates the total reduces to
// pricePerSeat * seats * (1 - discount) * months exactly.
func Compute(in Input) types.Breakdown {
	one := decimal.NewFromInt(1)
	months := decimal.NewFromInt(int64(in.Cadence.Months))

	monthlyBase := decimal.NewFromInt(in.PricePerSeat).Mul(decimal.NewFromInt(int64(in.Seats)))
	monthlyDiscounted := monthlyBase.Mul(one.Sub(in.Cadence.Discount))
	periodSubtotal := monthlyDiscounted.Mul(months)

	subtotal := periodSubtotal
	fromUpfront := decimal.Zero
	if in.Timing == types.PayUpfront {
		subtotal = periodSubtotal.Mul(one.Sub(in.UpfrontDiscountRate))
		fromUpfront = periodSubtotal.Sub(subtotal)
	}

	vat := subtotal.Mul(in.TaxRate)
	total := subtotal.Add(vat)
	fromCadence := monthlyBase.Mul(months).Sub(periodSubtotal)

	return types.Breakdown{
		Subtotal:      subtotal,
		VATAmount:     vat,
		Total:         total,
		TotalPerMonth: total.Div(months),
		Savings: types.Savings{
			FromCadence: fromCadence,
			FromUpfront: fromUpfront,
			Total:       fromCadence.Add(fromUpfront),
		},
	}
}
