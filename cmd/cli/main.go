package main

import (
	"fmt"
	"os"

	"seatwise/cmd/cli/cmd"
	"seatwise/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
