// Package catalogfile provides deployment-time catalog loading from
// HCL files. A catalog file declares tier, cadence, and alias blocks:
//
//	tier "starter" {
//	  name           = "Starter"
//	  min_seats      = 1
//	  max_seats      = 49        # omit for unbounded
//	  price_per_seat = 12000
//	}
//
//	cadence "annual" {
//	  months   = 12
//	  discount = "0.15"
//	}
//
//	alias "basic" {
//	  target = "starter"
//	}
//
// Discount rates are strings so catalog files never pick up
// binary-float drift.
package catalogfile

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"seatwise/core/catalog"
	"seatwise/core/types"
	"seatwise/internal/errors"
)

type fileContent struct {
	Tiers    []tierBlock    `hcl:"tier,block"`
	Cadences []cadenceBlock `hcl:"cadence,block"`
	Aliases  []aliasBlock   `hcl:"alias,block"`
}

type tierBlock struct {
	ID           string   `hcl:"id,label"`
	Name         string   `hcl:"name"`
	Badge        string   `hcl:"badge,optional"`
	MinSeats     int      `hcl:"min_seats"`
	MaxSeats     *int     `hcl:"max_seats,optional"`
	PricePerSeat int64    `hcl:"price_per_seat"`
	Features     []string `hcl:"features,optional"`
}

type cadenceBlock struct {
	ID       string `hcl:"id,label"`
	Months   int    `hcl:"months"`
	Discount string `hcl:"discount"`
}

type aliasBlock struct {
	Name   string `hcl:"name,label"`
	Target string `hcl:"target"`
}

// Load parses and validates a catalog file. Any structural defect is
// returned as an error; callers treat it as fatal at startup.
func Load(path string) (*catalog.Catalog, error) {
	var content fileContent
	if err := hclsimple.DecodeFile(path, nil, &content); err != nil {
		return nil, errors.Parsing("cannot parse catalog file", err).WithContext("path", path)
	}

	tiers := make([]types.Tier, 0, len(content.Tiers))
	for _, tb := range content.Tiers {
		limit := types.NoLimit()
		if tb.MaxSeats != nil {
			limit = types.LimitAt(*tb.MaxSeats)
		}
		tiers = append(tiers, types.Tier{
			ID:           tb.ID,
			Name:         tb.Name,
			Badge:        tb.Badge,
			MinSeats:     tb.MinSeats,
			MaxSeats:     limit,
			PricePerSeat: tb.PricePerSeat,
			Features:     tb.Features,
		})
	}

	cadences := make([]types.Cadence, 0, len(content.Cadences))
	for _, cb := range content.Cadences {
		discount, err := decimal.NewFromString(cb.Discount)
		if err != nil {
			return nil, errors.Parsing("invalid cadence discount", err).WithContext("cadence", cb.ID)
		}
		cadences = append(cadences, types.Cadence{
			ID:       cb.ID,
			Months:   cb.Months,
			Discount: discount,
		})
	}

	aliases := make(map[string]string, len(content.Aliases))
	for _, ab := range content.Aliases {
		aliases[ab.Name] = ab.Target
	}

	cat := catalog.New(tiers, cadences, aliases)
	if err := cat.MustValidate(); err != nil {
		return nil, err
	}
	return cat, nil
}
