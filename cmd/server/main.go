// Package main - Entry point for the seatwise pricing API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"seatwise/adapters/catalogfile"
	"seatwise/api"
	"seatwise/core/catalog"
	"seatwise/core/selection"
	"seatwise/internal/config"
	"seatwise/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgFile := flag.String("config", "", "Config file (default is built-in defaults)")
	catalogPath := flag.String("catalog", "", "Catalog file (default is the built-in catalog)")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	// Resolve and validate the catalog before serving anything. A
	// broken catalog is a deployment defect and must fail fast here.
	path := *catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	var (
		cat *catalog.Catalog
		err error
	)
	if path != "" {
		cat, err = catalogfile.Load(path)
	} else {
		cat = catalog.Default()
		err = cat.MustValidate()
	}
	if err != nil {
		logging.Fatal("catalog validation failed", zap.Error(err))
	}

	tax, upfront, err := cfg.Pricing.Rates()
	if err != nil {
		logging.Fatal("invalid pricing configuration", zap.Error(err))
	}

	reducer := selection.NewReducer(cat, selection.Rules{
		MaxSeats:            cfg.Pricing.MaxSeats,
		DefaultSeats:        cfg.Pricing.DefaultSeats,
		UpfrontDiscountRate: upfront,
		TaxRate:             tax,
	})

	apiServer := api.NewServer(version, reducer)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	logging.Info("seatwise server listening",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.Int("tiers", len(cat.Tiers())),
	)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
