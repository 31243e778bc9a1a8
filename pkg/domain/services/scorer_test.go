package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// buildOption assembles a normalized option directly, as the orchestrator
// would after running the normalizer
func buildOption(t *testing.T, vendorID entities.VendorID, pricePerBase string, moqBase int64, preferredVendor, preferredItem bool) entities.NormalizedVendorOption {
	t.Helper()
	price, err := entities.NewMoneyFromString(pricePerBase, "USD")
	if err != nil {
		t.Fatalf("Expected valid price: %v", err)
	}
	return entities.NormalizedVendorOption{
		Entry: entities.VendorPriceListEntry{
			ProductID:       "P-100",
			VendorID:        vendorID,
			VendorName:      string(vendorID),
			Unit:            "EACH",
			Price:           price,
			MOQ:             decimal.NewFromInt(moqBase),
			PreferredVendor: preferredVendor,
			PreferredItem:   preferredItem,
			Active:          true,
		},
		PricePerBaseUnit: price,
		MOQBase:          decimal.NewFromInt(moqBase),
	}
}

// withMOQ marks the option's MOQ eligibility for a requested base quantity
func withMOQ(opt entities.NormalizedVendorOption, requestedQtyBase decimal.Decimal) entities.NormalizedVendorOption {
	opt.MeetsMOQ = requestedQtyBase.Cmp(opt.MOQBase) >= 0
	return opt
}

func TestScorer_BestPriceWins(t *testing.T) {
	// Two vendors, neither preferred, at $10 and $9 per base unit
	qty := decimal.NewFromInt(30)
	options := []entities.NormalizedVendorOption{
		withMOQ(buildOption(t, "V-TEN", "10", 1, false, false), qty),
		withMOQ(buildOption(t, "V-NINE", "9", 1, false, false), qty),
	}

	result, err := NewDefaultScorer().Rank(options, qty)
	if err != nil {
		t.Fatalf("Expected ranking to succeed: %v", err)
	}

	if result.RecommendedVendor != "V-NINE" {
		t.Errorf("Expected V-NINE recommended, got %s", result.RecommendedVendor)
	}

	first, second := result.Vendors[0], result.Vendors[1]
	if !first.Breakdown.PriceScore.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected cheapest vendor priceScore 1.0, got %s", first.Breakdown.PriceScore)
	}
	if !second.Breakdown.PriceScore.Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("Expected priceScore 0.9 for the $10 vendor, got %s", second.Breakdown.PriceScore)
	}
	if !first.Score.Equal(decimal.RequireFromString("0.7")) {
		t.Errorf("Expected score 0.7 under default weights, got %s", first.Score)
	}
	if !second.Score.Equal(decimal.RequireFromString("0.63")) {
		t.Errorf("Expected score 0.63 under default weights, got %s", second.Score)
	}
}

func TestScorer_PreferredVendorBonusOutweighsPrice(t *testing.T) {
	// Vendor A preferred at $11, vendor B not preferred at $9: under default
	// weights A scores 0.3 + 0.7*(9/11) ~ 0.873 and outranks B at 0.7
	qty := decimal.NewFromInt(10)
	options := []entities.NormalizedVendorOption{
		withMOQ(buildOption(t, "V-A", "11", 1, true, false), qty),
		withMOQ(buildOption(t, "V-B", "9", 1, false, false), qty),
	}

	result, err := NewDefaultScorer().Rank(options, qty)
	if err != nil {
		t.Fatalf("Expected ranking to succeed: %v", err)
	}

	if result.RecommendedVendor != "V-A" {
		t.Errorf("Expected preferred vendor V-A recommended despite higher price, got %s", result.RecommendedVendor)
	}

	a := result.Vendors[0]
	if !a.Score.Round(4).Equal(decimal.RequireFromString("0.8727")) {
		t.Errorf("Expected V-A score ~0.8727, got %s", a.Score)
	}
	if !a.Breakdown.PreferredComponent.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("Expected preferred component 0.3, got %s", a.Breakdown.PreferredComponent)
	}

	b := result.Vendors[1]
	if b.VendorID() != "V-B" {
		t.Fatalf("Expected V-B ranked second, got %s", b.VendorID())
	}
	if !b.Score.Equal(decimal.RequireFromString("0.7")) {
		t.Errorf("Expected V-B score 0.7, got %s", b.Score)
	}
}

func TestScorer_PreferredItemLockDominates(t *testing.T) {
	// The locked vendor is the most expensive but must win regardless
	qty := decimal.NewFromInt(10)
	options := []entities.NormalizedVendorOption{
		withMOQ(buildOption(t, "V-CHEAP", "5", 1, false, false), qty),
		withMOQ(buildOption(t, "V-LOCKED", "20", 1, false, true), qty),
		withMOQ(buildOption(t, "V-MID", "8", 1, true, false), qty),
	}

	result, err := NewDefaultScorer().Rank(options, qty)
	if err != nil {
		t.Fatalf("Expected ranking to succeed: %v", err)
	}

	if result.RecommendedVendor != "V-LOCKED" {
		t.Errorf("Expected locked vendor recommended, got %s", result.RecommendedVendor)
	}
	if !result.Vendors[0].Eligible || result.Vendors[0].VendorID() != "V-LOCKED" {
		t.Error("Expected locked vendor ranked first and eligible")
	}
	for _, vendor := range result.Vendors[1:] {
		if vendor.Eligible {
			t.Errorf("Expected vendor %s marked non-eligible under item lock", vendor.VendorID())
		}
		if vendor.IneligibleReason != ReasonItemLocked {
			t.Errorf("Expected reason %q, got %q", ReasonItemLocked, vendor.IneligibleReason)
		}
	}
}

func TestScorer_MOQFailureExcludedWithAlert(t *testing.T) {
	// MOQ 24 base units, requested 18: vendor kept in output, not ranked
	qty := decimal.NewFromInt(18)
	options := []entities.NormalizedVendorOption{
		withMOQ(buildOption(t, "V-SHORT", "10", 24, false, false), qty),
		withMOQ(buildOption(t, "V-OK", "12", 6, false, false), qty),
	}

	result, err := NewDefaultScorer().Rank(options, qty)
	if err != nil {
		t.Fatalf("Expected ranking to succeed: %v", err)
	}

	if result.RecommendedVendor != "V-OK" {
		t.Errorf("Expected V-OK recommended, got %s", result.RecommendedVendor)
	}
	if len(result.Vendors) != 2 {
		t.Fatalf("Expected both vendors retained in output, got %d", len(result.Vendors))
	}

	excluded := result.Vendors[1]
	if excluded.Eligible {
		t.Error("Expected MOQ-failing vendor marked non-eligible")
	}
	if excluded.IneligibleReason != ReasonMOQNotMet {
		t.Errorf("Expected reason %q, got %q", ReasonMOQNotMet, excluded.IneligibleReason)
	}

	if len(result.Alerts) != 1 {
		t.Fatalf("Expected one MOQ alert, got %d", len(result.Alerts))
	}
	alert := result.Alerts[0]
	if alert.VendorID != "V-SHORT" {
		t.Errorf("Expected alert for V-SHORT, got %s", alert.VendorID)
	}
	if !alert.ShortfallBase.Equal(decimal.NewFromInt(6)) {
		t.Errorf("Expected shortfall of 6 base units, got %s", alert.ShortfallBase)
	}
}

func TestScorer_AllVendorsFailMOQ(t *testing.T) {
	qty := decimal.NewFromInt(5)
	options := []entities.NormalizedVendorOption{
		withMOQ(buildOption(t, "V-A", "10", 24, false, false), qty),
		withMOQ(buildOption(t, "V-B", "9", 12, false, false), qty),
	}

	result, err := NewDefaultScorer().Rank(options, qty)
	if err != nil {
		t.Fatalf("Expected ranking to succeed rather than fail: %v", err)
	}

	if result.RecommendedVendor != "" {
		t.Errorf("Expected empty recommendation, got %s", result.RecommendedVendor)
	}
	if !result.AllFailMOQ {
		t.Error("Expected AllFailMOQ to be set")
	}
	if len(result.Alerts) != 2 {
		t.Errorf("Expected alerts for both vendors, got %d", len(result.Alerts))
	}
	for _, vendor := range result.Vendors {
		if vendor.Eligible {
			t.Errorf("Expected vendor %s marked non-eligible, got eligible", vendor.VendorID())
		}
	}
}

func TestScorer_TieBreakChain(t *testing.T) {
	qty := decimal.NewFromInt(10)

	t.Run("preferred flag breaks equal-price tie", func(t *testing.T) {
		// With a zero preferred weight, scores differ only through the
		// tie-break chain
		scorer, err := NewScorer(ScoringWeights{Preferred: decimal.Zero, Price: decimal.NewFromInt(1)})
		if err != nil {
			t.Fatalf("Expected scorer creation to succeed: %v", err)
		}
		options := []entities.NormalizedVendorOption{
			withMOQ(buildOption(t, "V-PLAIN", "10", 1, false, false), qty),
			withMOQ(buildOption(t, "V-PREF", "10", 1, true, false), qty),
		}
		result, err := scorer.Rank(options, qty)
		if err != nil {
			t.Fatalf("Expected ranking to succeed: %v", err)
		}
		if result.RecommendedVendor != "V-PREF" {
			t.Errorf("Expected preferred vendor to win equal-score tie, got %s", result.RecommendedVendor)
		}
	})

	t.Run("vendor ID is the final deterministic tiebreak", func(t *testing.T) {
		options := []entities.NormalizedVendorOption{
			withMOQ(buildOption(t, "V-ZULU", "10", 1, false, false), qty),
			withMOQ(buildOption(t, "V-ALPHA", "10", 1, false, false), qty),
		}
		result, err := NewDefaultScorer().Rank(options, qty)
		if err != nil {
			t.Fatalf("Expected ranking to succeed: %v", err)
		}
		if result.Vendors[0].VendorID() != "V-ALPHA" || result.Vendors[1].VendorID() != "V-ZULU" {
			t.Errorf("Expected lexicographic order V-ALPHA, V-ZULU, got %s, %s",
				result.Vendors[0].VendorID(), result.Vendors[1].VendorID())
		}
	})
}

func TestScorer_RejectsNegativeWeights(t *testing.T) {
	_, err := NewScorer(ScoringWeights{Preferred: decimal.NewFromInt(-1), Price: decimal.NewFromInt(1)})
	var invalid *entities.InvalidWeightError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidWeightError, got %v", err)
	}
	if invalid.Name != "preferred" {
		t.Errorf("Expected error to name the preferred weight, got %s", invalid.Name)
	}

	if _, err := NewScorer(ScoringWeights{Preferred: decimal.Zero, Price: decimal.NewFromFloat(-0.5)}); err == nil {
		t.Error("Expected error for negative price weight, but got none")
	}
}

func TestScorer_MixedCurrencyFailsFast(t *testing.T) {
	qty := decimal.NewFromInt(10)
	usd := withMOQ(buildOption(t, "V-USD", "10", 1, false, false), qty)

	eurPrice, _ := entities.NewMoneyFromString("9", "EUR")
	eur := usd
	eur.Entry.VendorID = "V-EUR"
	eur.PricePerBaseUnit = eurPrice

	_, err := NewDefaultScorer().Rank([]entities.NormalizedVendorOption{usd, eur}, qty)
	var mismatch *entities.CurrencyMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected CurrencyMismatchError, got %v", err)
	}
}

func TestScorer_EmptyOptions(t *testing.T) {
	result, err := NewDefaultScorer().Rank(nil, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("Expected empty ranking to succeed: %v", err)
	}
	if result.RecommendedVendor != "" || len(result.Vendors) != 0 {
		t.Error("Expected empty result for empty options")
	}
}
