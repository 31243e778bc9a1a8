package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// buildCaseConfig returns a configuration with base unit "EACH" and a
// "CASE12" order unit of 12 base units
func buildCaseConfig(t *testing.T) *entities.ProductUnitConfiguration {
	t.Helper()
	config, err := entities.NewProductUnitConfiguration("OLIVE-OIL-1L", []entities.ProductOrderUnit{
		{Code: "EACH", Description: "each", Factor: decimal.NewFromInt(1), IsBase: true},
		{Code: "CASE12", Description: "case of 12", Factor: decimal.NewFromInt(12)},
	})
	if err != nil {
		t.Fatalf("Expected valid configuration to succeed: %v", err)
	}
	return config
}

func TestNormalizer_CaseQuoteInEachUnits(t *testing.T) {
	// Vendor quotes $120 per case of 12 with MOQ 2 cases; requested 30 each
	normalizer := NewNormalizer()
	config := buildCaseConfig(t)

	price, _ := entities.NewMoneyFromString("120", "USD")
	perBase, err := normalizer.NormalizePrice(config, price, "CASE12")
	if err != nil {
		t.Fatalf("Expected price normalization to succeed: %v", err)
	}
	if !perBase.Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected normalized price 10/each, got %s", perBase.Amount)
	}
	if perBase.Currency != "USD" {
		t.Errorf("Expected currency USD preserved, got %s", perBase.Currency)
	}

	moqBase, err := normalizer.NormalizeMOQ(config, decimal.NewFromInt(2), "CASE12")
	if err != nil {
		t.Fatalf("Expected MOQ normalization to succeed: %v", err)
	}
	if !moqBase.Equal(decimal.NewFromInt(24)) {
		t.Errorf("Expected normalized MOQ 24 each, got %s", moqBase)
	}

	if !normalizer.MeetsMOQ(decimal.NewFromInt(30), moqBase) {
		t.Error("Expected 30 each to satisfy MOQ of 24 each")
	}
	if normalizer.MeetsMOQ(decimal.NewFromInt(18), moqBase) {
		t.Error("Expected 18 each to fail MOQ of 24 each")
	}
	if !normalizer.MeetsMOQ(decimal.NewFromInt(24), moqBase) {
		t.Error("Expected exactly-equal quantity to satisfy MOQ")
	}
}

func TestNormalizer_ConvertQuantityRoundTrip(t *testing.T) {
	normalizer := NewNormalizer()
	config := buildCaseConfig(t)

	quantities := []string{"1", "2.5", "7", "0.125"}
	for _, q := range quantities {
		quantity := decimal.RequireFromString(q)

		inBase, err := normalizer.ConvertQuantity(config, quantity, "CASE12")
		if err != nil {
			t.Fatalf("Expected conversion to succeed: %v", err)
		}

		back, err := normalizer.DenormalizeQuantity(config, inBase, "CASE12")
		if err != nil {
			t.Fatalf("Expected denormalization to succeed: %v", err)
		}

		if !back.Equal(quantity) {
			t.Errorf("Expected round trip of %s to return %s, got %s", q, q, back)
		}
	}
}

func TestNormalizer_UnknownUnit(t *testing.T) {
	normalizer := NewNormalizer()
	config := buildCaseConfig(t)

	_, err := normalizer.ConvertQuantity(config, decimal.NewFromInt(1), "PALLET")
	var notFound *entities.UnitNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected UnitNotFoundError, got %v", err)
	}

	price, _ := entities.NewMoneyFromString("10", "USD")
	if _, err := normalizer.NormalizePrice(config, price, "PALLET"); err == nil {
		t.Error("Expected price normalization with unknown unit to fail, but got none")
	}
}

func TestNormalizer_MeetsMOQMonotonicity(t *testing.T) {
	// For a fixed MOQ, increasing quantity never flips MeetsMOQ true -> false
	normalizer := NewNormalizer()
	moq := decimal.NewFromInt(24)

	met := false
	for qty := int64(1); qty <= 48; qty++ {
		meets := normalizer.MeetsMOQ(decimal.NewFromInt(qty), moq)
		if met && !meets {
			t.Fatalf("Expected MeetsMOQ to stay true once satisfied, flipped at quantity %d", qty)
		}
		if meets {
			met = true
		}
	}
	if !met {
		t.Error("Expected MOQ to be satisfied within the tested range")
	}
}

func TestNormalizer_NormalizeEntry(t *testing.T) {
	normalizer := NewNormalizer()
	config := buildCaseConfig(t)

	price, _ := entities.NewMoneyFromString("120", "USD")
	entry, err := entities.NewVendorPriceListEntry(
		"OLIVE-OIL-1L", "V-100", "Vendor X", "CASE12",
		price, decimal.NewFromInt(2), false, false, true,
	)
	if err != nil {
		t.Fatalf("Expected valid entry creation to succeed: %v", err)
	}

	option, err := normalizer.NormalizeEntry(config, entry, decimal.NewFromInt(30))
	if err != nil {
		t.Fatalf("Expected entry normalization to succeed: %v", err)
	}
	if !option.PricePerBaseUnit.Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected price per base unit 10, got %s", option.PricePerBaseUnit.Amount)
	}
	if !option.MOQBase.Equal(decimal.NewFromInt(24)) {
		t.Errorf("Expected MOQ of 24 base units, got %s", option.MOQBase)
	}
	if !option.MeetsMOQ {
		t.Error("Expected 30 base units to satisfy MOQ of 24")
	}
}
