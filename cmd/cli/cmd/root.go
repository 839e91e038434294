// Package cmd provides the CLI commands for seatwise.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seatwise/adapters/catalogfile"
	"seatwise/core/catalog"
	"seatwise/core/selection"
	"seatwise/internal/config"
	"seatwise/internal/logging"
)

var (
	cfgFile     string
	catalogPath string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "seatwise",
	Short: "Recommend subscription tiers and calculate seat pricing",
	Long: `seatwise is a subscription-tier recommendation and price
calculation tool for per-seat billing.

It resolves the right tier for a seat count, computes tax- and
discount-inclusive price breakdowns across billing cadences, and ranks
cadences by monthly cost.

Examples:
  seatwise tiers --seats 120
  seatwise quote --tier growth --seats 120 --cadence annual --upfront
  seatwise cadences --tier growth --seats 120`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (default is the built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(cadencesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog resolves the catalog: --catalog flag, then the config
// path, then the built-in default. A broken catalog fails fast here.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = config.Get().Catalog.Path
	}
	if path != "" {
		return catalogfile.Load(path)
	}

	cat := catalog.Default()
	if err := cat.MustValidate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// buildReducer assembles the selection reducer from config.
func buildReducer() (*selection.Reducer, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	tax, upfront, err := cfg.Pricing.Rates()
	if err != nil {
		return nil, err
	}

	rules := selection.Rules{
		MaxSeats:            cfg.Pricing.MaxSeats,
		DefaultSeats:        cfg.Pricing.DefaultSeats,
		UpfrontDiscountRate: upfront,
		TaxRate:             tax,
	}
	return selection.NewReducer(cat, rules), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("seatwise version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("tax rate:              %s\n", cfg.Pricing.TaxRate)
		fmt.Printf("upfront discount rate: %s\n", cfg.Pricing.UpfrontDiscountRate)
		fmt.Printf("max seats:             %d\n", cfg.Pricing.MaxSeats)
		fmt.Printf("default seats:         %d\n", cfg.Pricing.DefaultSeats)
		if cfg.Catalog.Path != "" {
			fmt.Printf("catalog file:          %s\n", cfg.Catalog.Path)
		} else {
			fmt.Println("catalog file:          (built-in)")
		}
		return nil
	},
}
