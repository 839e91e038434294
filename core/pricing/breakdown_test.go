package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"seatwise/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func semiannual() types.Cadence {
	return types.Cadence{ID: "semiannual", Months: 6, Discount: dec("0.10")}
}

// TestComputeMonthlyTiming checks every intermediate of the breakdown
// for monthly installments
func TestComputeMonthlyTiming(t *testing.T) {
	b := Compute(Input{
		PricePerSeat:        10000,
		Seats:               100,
		Cadence:             semiannual(),
		Timing:              types.PayMonthly,
		UpfrontDiscountRate: dec("0.05"),
		TaxRate:             dec("0.19"),
	})

	checks := []struct {
		name     string
		got      decimal.Decimal
		expected string
	}{
		{"subtotal", b.Subtotal, "5400000"},
		{"vat", b.VATAmount, "1026000"},
		{"total", b.Total, "6426000"},
		{"total per month", b.TotalPerMonth, "1071000"},
		{"cadence savings", b.Savings.FromCadence, "600000"},
		{"upfront savings", b.Savings.FromUpfront, "0"},
		{"total savings", b.Savings.Total, "600000"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.expected)) {
			t.Errorf("%s: expected %s, got %s", c.name, c.expected, c.got)
		}
	}
}

// TestComputeUpfrontTiming checks the same inputs paid upfront
func TestComputeUpfrontTiming(t *testing.T) {
	b := Compute(Input{
		PricePerSeat:        10000,
		Seats:               100,
		Cadence:             semiannual(),
		Timing:              types.PayUpfront,
		UpfrontDiscountRate: dec("0.05"),
		TaxRate:             dec("0.19"),
	})

	checks := []struct {
		name     string
		got      decimal.Decimal
		expected string
	}{
		{"subtotal", b.Subtotal, "5130000"},
		{"vat", b.VATAmount, "974700"},
		{"total", b.Total, "6104700"},
		{"total per month", b.TotalPerMonth, "1017450"},
		{"cadence savings", b.Savings.FromCadence, "600000"},
		{"upfront savings", b.Savings.FromUpfront, "270000"},
		{"total savings", b.Savings.Total, "870000"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.expected)) {
			t.Errorf("%s: expected %s, got %s", c.name, c.expected, c.got)
		}
	}
}

// TestComputeZeroRatesReduction proves that with zero tax and zero
// upfront discount the total reduces to the plain discounted period
// price, exactly
func TestComputeZeroRatesReduction(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		seats    int
		cadence  types.Cadence
		timing   types.PaymentTiming
		expected string
	}{
		{
			name:     "semiannual monthly timing",
			price:    10000,
			seats:    100,
			cadence:  semiannual(),
			timing:   types.PayMonthly,
			expected: "5400000",
		},
		{
			name:     "upfront timing with zero rate changes nothing",
			price:    10000,
			seats:    100,
			cadence:  semiannual(),
			timing:   types.PayUpfront,
			expected: "5400000",
		},
		{
			name:     "no cadence discount",
			price:    777,
			seats:    13,
			cadence:  types.Cadence{ID: "monthly", Months: 1, Discount: decimal.Zero},
			timing:   types.PayMonthly,
			expected: "10101",
		},
		{
			name:     "odd rate keeps exact decimals",
			price:    9999,
			seats:    7,
			cadence:  types.Cadence{ID: "annual", Months: 12, Discount: dec("0.13")},
			timing:   types.PayMonthly,
			expected: "730726.92", // 9999 * 7 * 0.87 * 12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(Input{
				PricePerSeat: tt.price,
				Seats:        tt.seats,
				Cadence:      tt.cadence,
				Timing:       tt.timing,
			})
			if !b.Total.Equal(dec(tt.expected)) {
				t.Errorf("expected total %s, got %s", tt.expected, b.Total)
			}
			if !b.Savings.FromUpfront.IsZero() {
				t.Errorf("expected zero upfront savings, got %s", b.Savings.FromUpfront)
			}
		})
	}
}

// TestComputeNonNegative proves all outputs stay non-negative for
// non-negative inputs
func TestComputeNonNegative(t *testing.T) {
	inputs := []Input{
		{PricePerSeat: 0, Seats: 1, Cadence: semiannual(), Timing: types.PayUpfront, UpfrontDiscountRate: dec("0.05"), TaxRate: dec("0.19")},
		{PricePerSeat: 1, Seats: 1, Cadence: types.Cadence{ID: "monthly", Months: 1, Discount: decimal.Zero}, Timing: types.PayMonthly},
		NewInput(12000, 49, types.Cadence{ID: "annual", Months: 12, Discount: dec("0.15")}, types.PayUpfront),
	}

	for _, in := range inputs {
		b := Compute(in)
		for name, v := range map[string]decimal.Decimal{
			"subtotal":        b.Subtotal,
			"vat":             b.VATAmount,
			"total":           b.Total,
			"total per month": b.TotalPerMonth,
			"cadence savings": b.Savings.FromCadence,
			"upfront savings": b.Savings.FromUpfront,
			"total savings":   b.Savings.Total,
		} {
			if v.IsNegative() {
				t.Errorf("%s went negative: %s", name, v)
			}
		}
	}
}

// TestRoundedBoundary verifies rounding happens per field from exact
// values, not from each other
func TestRoundedBoundary(t *testing.T) {
	b := Compute(Input{
		PricePerSeat: 9999,
		Seats:        7,
		Cadence:      types.Cadence{ID: "annual", Months: 12, Discount: dec("0.13")},
		Timing:       types.PayMonthly,
		TaxRate:      dec("0.19"),
	})

	r := b.Rounded()
	if r.Subtotal != 730727 { // 730726.92
		t.Errorf("expected rounded subtotal 730727, got %d", r.Subtotal)
	}
	if r.VATAmount != 138838 { // 138838.1148
		t.Errorf("expected rounded vat 138838, got %d", r.VATAmount)
	}
	if r.Total != 869565 { // 869565.0348
		t.Errorf("expected rounded total 869565, got %d", r.Total)
	}
}

// TestNewInputDefaults verifies the package default rates
func TestNewInputDefaults(t *testing.T) {
	in := NewInput(100, 10, semiannual(), types.PayUpfront)
	if !in.UpfrontDiscountRate.Equal(dec("0.05")) {
		t.Errorf("expected default upfront rate 0.05, got %s", in.UpfrontDiscountRate)
	}
	if !in.TaxRate.Equal(dec("0.19")) {
		t.Errorf("expected default tax rate 0.19, got %s", in.TaxRate)
	}
}
