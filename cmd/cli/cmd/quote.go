// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seatwise/core/lookup"
	"seatwise/core/pricing"
	"seatwise/core/types"
	"seatwise/core/validate"
	"seatwise/internal/config"
)

var (
	quoteTier    string
	quoteSeats   int
	quoteCadence string
	quoteUpfront bool
	quoteFormat  string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Calculate a price breakdown for a tier and seat count",
	Long: `Compute the tax- and discount-inclusive price breakdown for a
tier, seat count, billing cadence, and payment timing.

The tier may be omitted, in which case the recommended tier for the
seat count is used. Legacy tier names are accepted.

Examples:
  seatwise quote --seats 120
  seatwise quote --tier growth --seats 120 --cadence annual
  seatwise quote --tier campus --seats 300 --cadence annual --upfront`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "t", "", "tier id (default: recommended for --seats)")
	quoteCmd.Flags().IntVarP(&quoteSeats, "seats", "s", 1, "seat count")
	quoteCmd.Flags().StringVarP(&quoteCadence, "cadence", "c", "", "billing cadence (default: catalog's first)")
	quoteCmd.Flags().BoolVarP(&quoteUpfront, "upfront", "u", false, "pay the full period upfront")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if quoteSeats < 1 {
		return fmt.Errorf("seats must be a positive integer, got %d", quoteSeats)
	}

	tier := lookup.TierForSeats(cat, quoteSeats)
	if quoteTier != "" {
		t, ok := lookup.TierByID(cat, quoteTier)
		if !ok {
			return fmt.Errorf("unknown tier: %s", quoteTier)
		}
		tier = t
	}

	cadence := cat.DefaultCadence()
	if quoteCadence != "" {
		c, ok := cat.Cadence(quoteCadence)
		if !ok {
			return fmt.Errorf("unknown cadence: %s", quoteCadence)
		}
		cadence = c
	}

	timing := types.PayMonthly
	if quoteUpfront {
		timing = types.PayUpfront
	}

	cfg := config.Get()
	tax, upfront, err := cfg.Pricing.Rates()
	if err != nil {
		return err
	}

	breakdown := pricing.Compute(pricing.Input{
		PricePerSeat:        tier.PricePerSeat,
		Seats:               quoteSeats,
		Cadence:             cadence,
		Timing:              timing,
		UpfrontDiscountRate: upfront,
		TaxRate:             tax,
	})
	check := validate.Check(tier, quoteSeats)

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == "json" {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"tier":       tier.ID,
			"seats":      quoteSeats,
			"cadence":    cadence.ID,
			"timing":     timing.String(),
			"validation": check,
			"breakdown":  breakdown.Rounded(),
		})
	}

	printQuote(tier, cadence, timing, check, breakdown.Rounded())
	return nil
}

func printQuote(tier types.Tier, cadence types.Cadence, timing types.PaymentTiming, check types.ValidationResult, b types.RoundedBreakdown) {
	fmt.Printf("%s · %d months · %s\n\n", tier.Name, cadence.Months, timing)

	if !check.Valid {
		if check.ReasonKey == types.ReasonBelowMinimum {
			fmt.Printf("Warning: %s requires at least %d seats\n\n", check.ReasonParams.Tier, check.ReasonParams.Min)
		} else {
			fmt.Printf("Warning: %s allows at most %d seats\n\n", check.ReasonParams.Tier, check.ReasonParams.Max)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Subtotal\t%d\t\n", b.Subtotal)
	fmt.Fprintf(w, "VAT\t%d\t\n", b.VATAmount)
	fmt.Fprintf(w, "Total\t%d\t\n", b.Total)
	fmt.Fprintf(w, "Per month\t%d\t\n", b.TotalPerMonth)
	if config.Get().Output.ShowSavings && b.Savings.Total > 0 {
		fmt.Fprintf(w, "\t\t\n")
		fmt.Fprintf(w, "Cadence savings\t%d\t\n", b.Savings.FromCadence)
		fmt.Fprintf(w, "Upfront savings\t%d\t\n", b.Savings.FromUpfront)
		fmt.Fprintf(w, "Total savings\t%d\t\n", b.Savings.Total)
	}
	w.Flush()
}
