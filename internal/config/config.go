// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"seatwise/internal/errors"
	"seatwise/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Catalog contains catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings.
// Rates are decimal strings so config round-trips never pick up
// binary-float drift.
type PricingConfig struct {
	// TaxRate is the VAT rate applied to subtotals
	TaxRate string `json:"tax_rate"`

	// UpfrontDiscountRate is the discount for paying a period upfront
	UpfrontDiscountRate string `json:"upfront_discount_rate"`

	// MaxSeats is the global seat-count ceiling
	MaxSeats int `json:"max_seats"`

	// DefaultSeats is the seat count assumed when none is persisted
	DefaultSeats int `json:"default_seats"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// Path is an optional catalog file; empty uses the built-in catalog
	Path string `json:"path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowSavings shows the itemized savings section
	ShowSavings bool `json:"show_savings"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Pricing: PricingConfig{
			TaxRate:             "0.19",
			UpfrontDiscountRate: "0.05",
			MaxSeats:            10000,
			DefaultSeats:        1,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowSavings:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Rates parses the configured tax and upfront-discount rates.
func (p PricingConfig) Rates() (tax, upfront decimal.Decimal, err error) {
	tax, err = decimal.NewFromString(p.TaxRate)
	if err != nil {
		return tax, upfront, errors.Config("invalid tax_rate", err)
	}
	upfront, err = decimal.NewFromString(p.UpfrontDiscountRate)
	if err != nil {
		return tax, upfront, errors.Config("invalid upfront_discount_rate", err)
	}
	return tax, upfront, nil
}

// Load reads configuration from a JSON file, filling gaps with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("cannot read config file", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Config("cannot parse config file", err)
	}
	if cfg.Pricing.MaxSeats < 1 {
		return nil, errors.New(errors.TypeConfig, "max_seats must be >= 1")
	}
	if cfg.Pricing.DefaultSeats < 1 {
		return nil, errors.New(errors.TypeConfig, "default_seats must be >= 1")
	}
	if _, _, err := cfg.Pricing.Rates(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var current = Default()

// Get returns the current configuration
func Get() *Config {
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	current = cfg
}
