package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PeakMNA/carmen-sub008/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		unitsFile  = flag.String("units", "", "Path to product unit configuration CSV")
		pricesFile = flag.String("prices", "", "Path to vendor price list CSV")
		product    = flag.String("product", "", "Product ID to price")
		quantity   = flag.String("qty", "", "Requested quantity (decimal)")
		unit       = flag.String("unit", "", "Unit code the quantity is expressed in")
		override   = flag.String("override", "", "Vendor ID to select instead of the recommendation")
		reason     = flag.String("reason", "", "Optional reason for the override")
		actor      = flag.String("actor", "", "User applying the override")
		format     = flag.String("format", "text", "Output format: text, json")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		UnitsFile:      *unitsFile,
		PricesFile:     *pricesFile,
		Product:        *product,
		Quantity:       *quantity,
		Unit:           *unit,
		OverrideVendor: *override,
		OverrideReason: *reason,
		Actor:          *actor,
		Format:         *format,
		Help:           *help,
	}

	// Create and execute command
	cmd := commands.NewPricingCommand(config)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
