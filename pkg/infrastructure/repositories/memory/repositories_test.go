package memory

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

func TestProductConfigRepository(t *testing.T) {
	repo := NewProductConfigRepository()

	config, err := entities.NewProductUnitConfiguration("P-100", []entities.ProductOrderUnit{
		{Code: "EACH", Factor: decimal.NewFromInt(1), IsBase: true},
	})
	if err != nil {
		t.Fatalf("Expected valid configuration to succeed: %v", err)
	}

	if err := repo.LoadUnitConfigs([]*entities.ProductUnitConfiguration{config}); err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}

	loaded, err := repo.GetUnitConfig("P-100")
	if err != nil {
		t.Fatalf("Expected lookup to succeed: %v", err)
	}
	if loaded.BaseUnit != "EACH" {
		t.Errorf("Expected base unit EACH, got %s", loaded.BaseUnit)
	}

	_, err = repo.GetUnitConfig("P-404")
	var notFound *entities.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected ProductNotFoundError, got %v", err)
	}
	if notFound.ProductID != "P-404" {
		t.Errorf("Expected error to name P-404, got %s", notFound.ProductID)
	}

	configs, err := repo.GetAllUnitConfigs()
	if err != nil {
		t.Fatalf("Expected listing to succeed: %v", err)
	}
	if len(configs) != 1 {
		t.Errorf("Expected 1 configuration, got %d", len(configs))
	}
}

func TestPriceListRepository_FiltersInactiveEntries(t *testing.T) {
	repo := NewPriceListRepository()

	price, _ := entities.NewMoneyFromString("10", "USD")
	active, err := entities.NewVendorPriceListEntry(
		"P-100", "V-A", "Vendor A", "EACH", price, decimal.NewFromInt(1), false, false, true,
	)
	if err != nil {
		t.Fatalf("Expected valid entry: %v", err)
	}
	inactive, err := entities.NewVendorPriceListEntry(
		"P-100", "V-B", "Vendor B", "EACH", price, decimal.NewFromInt(1), false, false, false,
	)
	if err != nil {
		t.Fatalf("Expected valid entry: %v", err)
	}

	if err := repo.LoadEntries([]*entities.VendorPriceListEntry{active, inactive}); err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}

	entries, err := repo.GetActiveEntries("P-100")
	if err != nil {
		t.Fatalf("Expected lookup to succeed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the active entry, got %d", len(entries))
	}
	if entries[0].VendorID != "V-A" {
		t.Errorf("Expected V-A, got %s", entries[0].VendorID)
	}

	entries, err = repo.GetActiveEntries("P-UNKNOWN")
	if err != nil {
		t.Fatalf("Expected lookup of unknown product to succeed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty result for unknown product, got %d entries", len(entries))
	}
}
