// Package cmd - tiers command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seatwise/core/lookup"
)

var tiersSeats int

// tiersCmd represents the tiers command
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List catalog tiers",
	Long: `List the deployed pricing tiers. With --seats, the tier
recommended for that seat count is marked.

Examples:
  seatwise tiers
  seatwise tiers --seats 120`,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().IntVarP(&tiersSeats, "seats", "s", 0, "mark the tier recommended for this seat count")
}

func runTiers(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	recommended := ""
	if tiersSeats > 0 {
		recommended = lookup.TierForSeats(cat, tiersSeats).ID
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEATS\tPRICE/SEAT\t")
	for _, t := range cat.Tiers() {
		seatRange := fmt.Sprintf("%d+", t.MinSeats)
		if max, bounded := t.MaxSeats.Max(); bounded {
			seatRange = fmt.Sprintf("%d-%d", t.MinSeats, max)
		}
		mark := ""
		if t.ID == recommended {
			mark = " <- recommended"
		}
		badge := ""
		if t.Badge != "" {
			badge = " (" + t.Badge + ")"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%d\t%s\n", t.ID, t.Name, badge, seatRange, t.PricePerSeat, mark)
	}
	return w.Flush()
}
