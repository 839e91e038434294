// Package cmd - cadences command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seatwise/core/lookup"
	"seatwise/core/pricing"
	"seatwise/core/types"
	"seatwise/internal/config"
)

var (
	cadencesTier    string
	cadencesSeats   int
	cadencesUpfront bool
)

// cadencesCmd represents the cadences command
var cadencesCmd = &cobra.Command{
	Use:   "cadences",
	Short: "Rank billing cadences by monthly cost",
	Long: `Rank every billing cadence by its tax-inclusive amortized
monthly cost for a tier and seat count, cheapest first.

Examples:
  seatwise cadences --seats 120
  seatwise cadences --tier campus --seats 300 --upfront`,
	RunE: runCadences,
}

func init() {
	cadencesCmd.Flags().StringVarP(&cadencesTier, "tier", "t", "", "tier id (default: recommended for --seats)")
	cadencesCmd.Flags().IntVarP(&cadencesSeats, "seats", "s", 1, "seat count")
	cadencesCmd.Flags().BoolVarP(&cadencesUpfront, "upfront", "u", false, "pay the full period upfront")
}

func runCadences(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if cadencesSeats < 1 {
		return fmt.Errorf("seats must be a positive integer, got %d", cadencesSeats)
	}

	tier := lookup.TierForSeats(cat, cadencesSeats)
	if cadencesTier != "" {
		t, ok := lookup.TierByID(cat, cadencesTier)
		if !ok {
			return fmt.Errorf("unknown tier: %s", cadencesTier)
		}
		tier = t
	}

	timing := types.PayMonthly
	if cadencesUpfront {
		timing = types.PayUpfront
	}

	tax, upfront, err := config.Get().Pricing.Rates()
	if err != nil {
		return err
	}

	ranking := pricing.Rank(pricing.Input{
		PricePerSeat:        tier.PricePerSeat,
		Seats:               cadencesSeats,
		Timing:              timing,
		UpfrontDiscountRate: upfront,
		TaxRate:             tax,
	}, cat.Cadences())

	fmt.Printf("%s · %d seats · %s\n\n", tier.Name, cadencesSeats, timing)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CADENCE\tMONTHS\tPER MONTH\tSAVINGS\t")
	for i, rc := range ranking {
		mark := ""
		if i == 0 {
			mark = " <- best"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s%%\t%s\n",
			rc.Cadence.ID,
			rc.Cadence.Months,
			rc.MonthlyCost.Round(0).IntPart(),
			rc.SavingsPercent.Round(1),
			mark,
		)
	}
	return w.Flush()
}
