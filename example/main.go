package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	appservices "github.com/PeakMNA/carmen-sub008/pkg/application/services"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/infrastructure/audit"
	"github.com/PeakMNA/carmen-sub008/pkg/infrastructure/repositories/memory"
	"github.com/PeakMNA/carmen-sub008/pkg/interfaces/cli/output"
)

// Demonstrates the auto-pricing flow for a hotel kitchen staple quoted by
// three vendors in different units: fetch, interactive recalculation, and a
// manual override with its audit trail.
func main() {
	configRepo := memory.NewProductConfigRepository()
	priceRepo := memory.NewPriceListRepository()
	auditLog := audit.NewInMemoryAuditLog()

	each, err := entities.NewProductOrderUnit("EACH", "each", decimal.NewFromInt(1), true)
	if err != nil {
		log.Fatal(err)
	}
	case12, err := entities.NewProductOrderUnit("CASE12", "case of 12", decimal.NewFromInt(12), false)
	if err != nil {
		log.Fatal(err)
	}
	case24, err := entities.NewProductOrderUnit("CASE24", "case of 24", decimal.NewFromInt(24), false)
	if err != nil {
		log.Fatal(err)
	}

	config, err := entities.NewProductUnitConfiguration("OLIVE-OIL-1L", []entities.ProductOrderUnit{*each, *case12, *case24})
	if err != nil {
		log.Fatal(err)
	}
	configRepo.AddUnitConfig(config)

	addEntry(priceRepo, "V-AEGEAN", "Aegean Imports", "CASE12", "118.80", 2, true, false)
	addEntry(priceRepo, "V-GOLDEN", "Golden Grove", "CASE24", "228.00", 1, false, false)
	addEntry(priceRepo, "V-HARBOR", "Harborside Foods", "EACH", "9.45", 48, false, false)

	service := appservices.NewPricingService(configRepo, priceRepo, auditLog)

	comparison, err := service.FetchPricing("OLIVE-OIL-1L", decimal.NewFromInt(30), "EACH")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(output.RenderText(comparison))

	// The buyer bumps the order to 60 bottles; Harborside's MOQ now clears
	comparison, err = service.Recalculate(comparison, decimal.NewFromInt(60))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(output.RenderText(comparison))

	// Buyer overrides to the incumbent vendor for delivery consolidation
	comparison, _, err = service.ApplyOverride(comparison, "V-AEGEAN", "buyer.lee", "consolidating Friday delivery")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(output.RenderText(comparison))

	records, err := auditLog.Records(comparison.ComparisonID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(output.RenderAuditTrail(records))
}

func addEntry(repo *memory.PriceListRepository, vendorID entities.VendorID, name string, unit entities.UnitCode, price string, moq int64, preferredVendor, preferredItem bool) {
	money, err := entities.NewMoneyFromString(price, "USD")
	if err != nil {
		log.Fatal(err)
	}
	entry, err := entities.NewVendorPriceListEntry(
		"OLIVE-OIL-1L", vendorID, name, unit, money,
		decimal.NewFromInt(moq), preferredVendor, preferredItem, true,
	)
	if err != nil {
		log.Fatal(err)
	}
	repo.AddEntry(entry)
}
