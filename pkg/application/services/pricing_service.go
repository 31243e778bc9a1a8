package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/repositories"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/services"
)

// PricingService is the auto-pricing entry point used by the surrounding
// application. It loads the applicable price list entries for a product,
// normalizes them into base units, ranks them, applies MOQ gating, and
// exposes recalculation and manual-override-with-audit operations.
//
// All operations return new result values; a PRItemPriceComparison handed to
// the caller is never mutated afterwards, so concurrent callers need no
// locking as long as each owns its own comparison.
type PricingService struct {
	configRepo repositories.ProductConfigRepository
	priceRepo  repositories.PriceListRepository
	auditLog   repositories.OverrideAuditLog
	normalizer *services.Normalizer
	scorer     *services.Scorer
}

// NewPricingService creates a pricing service with default scoring weights
func NewPricingService(
	configRepo repositories.ProductConfigRepository,
	priceRepo repositories.PriceListRepository,
	auditLog repositories.OverrideAuditLog,
) *PricingService {
	return &PricingService{
		configRepo: configRepo,
		priceRepo:  priceRepo,
		auditLog:   auditLog,
		normalizer: services.NewNormalizer(),
		scorer:     services.NewDefaultScorer(),
	}
}

// NewPricingServiceWithWeights creates a pricing service with custom scoring
// weights, rejecting negative weights
func NewPricingServiceWithWeights(
	configRepo repositories.ProductConfigRepository,
	priceRepo repositories.PriceListRepository,
	auditLog repositories.OverrideAuditLog,
	weights services.ScoringWeights,
) (*PricingService, error) {
	scorer, err := services.NewScorer(weights)
	if err != nil {
		return nil, err
	}
	return &PricingService{
		configRepo: configRepo,
		priceRepo:  priceRepo,
		auditLog:   auditLog,
		normalizer: services.NewNormalizer(),
		scorer:     scorer,
	}, nil
}

// FetchPricing builds the full price comparison for one purchase request
// line item: normalized vendor options, ranking, MOQ alerts, and the system
// recommendation as the initial selection.
//
// Fails with ProductNotFoundError when no unit configuration exists for the
// product and with UnitNotFoundError when the requested unit is not declared
// on it. An empty price list is not an error: the returned comparison carries
// NoVendorsAvailable and the caller decides how to surface it.
func (s *PricingService) FetchPricing(
	productID entities.ProductID,
	quantity decimal.Decimal,
	requestedUnit entities.UnitCode,
) (*entities.PRItemPriceComparison, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("requested quantity must be positive, got %s", quantity)
	}

	config, err := s.configRepo.GetUnitConfig(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unit configuration for %s: %w", productID, err)
	}

	unit, err := config.Unit(requestedUnit)
	if err != nil {
		return nil, err
	}
	quantityBase := quantity.Mul(unit.Factor)

	comparison := &entities.PRItemPriceComparison{
		ComparisonID:        uuid.New().String(),
		ProductID:           productID,
		RequestedQty:        quantity,
		RequestedUnit:       requestedUnit,
		RequestedUnitFactor: unit.Factor,
		RequestedQtyBase:    quantityBase,
		Selection:           entities.Unselected,
	}

	entries, err := s.priceRepo.GetActiveEntries(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price list for %s: %w", productID, err)
	}
	if len(entries) == 0 {
		comparison.NoVendorsAvailable = true
		return comparison, nil
	}

	options := make([]entities.NormalizedVendorOption, 0, len(entries))
	for _, entry := range entries {
		option, err := s.normalizer.NormalizeEntry(config, entry, quantityBase)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}

	ranked, err := s.scorer.Rank(options, quantityBase)
	if err != nil {
		return nil, err
	}

	applyRanking(comparison, ranked)
	if comparison.RecommendedVendor != "" {
		comparison.SelectedVendor = comparison.RecommendedVendor
		comparison.Selection = entities.Recommended
	}
	return comparison, nil
}

// Recalculate re-derives MOQ eligibility and re-scores an existing comparison
// at a new quantity without re-fetching price list data, for fast interactive
// quantity edits. The new quantity is expressed in the comparison's requested
// unit. Idempotent: recalculating twice at the same quantity yields identical
// output. An overridden selection survives the quantity change; otherwise the
// selection follows the new recommendation.
func (s *PricingService) Recalculate(
	comparison *entities.PRItemPriceComparison,
	newQuantity decimal.Decimal,
) (*entities.PRItemPriceComparison, error) {
	if !newQuantity.IsPositive() {
		return nil, fmt.Errorf("requested quantity must be positive, got %s", newQuantity)
	}

	result := comparison.Clone()
	result.RequestedQty = newQuantity
	result.RequestedQtyBase = newQuantity.Mul(comparison.RequestedUnitFactor)

	if comparison.NoVendorsAvailable {
		return result, nil
	}

	options := make([]entities.NormalizedVendorOption, 0, len(comparison.Vendors))
	for _, vendor := range comparison.Vendors {
		option := vendor.Option
		option.MeetsMOQ = s.normalizer.MeetsMOQ(result.RequestedQtyBase, option.MOQBase)
		options = append(options, option)
	}

	ranked, err := s.scorer.Rank(options, result.RequestedQtyBase)
	if err != nil {
		return nil, err
	}

	applyRanking(result, ranked)
	switch {
	case comparison.Selection == entities.Overridden:
		// Manual choice survives a quantity edit
	case result.RecommendedVendor != "":
		result.SelectedVendor = result.RecommendedVendor
		result.Selection = entities.Recommended
	default:
		result.SelectedVendor = ""
		result.Selection = entities.Unselected
	}
	return result, nil
}

// ApplyOverride changes the selected vendor away from the system
// recommendation, appending an immutable audit record. The recommendation
// itself is never altered: recommended and selected are tracked
// independently so the UI can show what was overridden.
//
// Overriding back to the recommended vendor is treated as an explicit revert:
// still logged, and the selection state returns to Recommended. Fails with
// VendorNotInComparisonError, producing no audit record, when the target
// vendor is not part of the comparison's option set.
func (s *PricingService) ApplyOverride(
	comparison *entities.PRItemPriceComparison,
	newVendorID entities.VendorID,
	actor, reason string,
) (*entities.PRItemPriceComparison, *entities.VendorOverrideRecord, error) {
	if !comparison.HasVendor(newVendorID) {
		return nil, nil, &entities.VendorNotInComparisonError{
			ComparisonID: comparison.ComparisonID,
			VendorID:     newVendorID,
		}
	}

	record, err := entities.NewVendorOverrideRecord(
		comparison.ComparisonID,
		comparison.ProductID,
		actor,
		comparison.SelectedVendor,
		newVendorID,
		comparison.RecommendedVendor,
		reason,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create override record: %w", err)
	}

	stored, err := s.auditLog.Append(record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to append override record: %w", err)
	}

	result := comparison.Clone()
	result.SelectedVendor = newVendorID
	if newVendorID == result.RecommendedVendor {
		result.Selection = entities.Recommended
	} else {
		result.Selection = entities.Overridden
	}
	return result, stored, nil
}

// applyRanking copies a rank result into a comparison
func applyRanking(comparison *entities.PRItemPriceComparison, ranked *services.RankResult) {
	comparison.Vendors = ranked.Vendors
	comparison.RecommendedVendor = ranked.RecommendedVendor
	comparison.Alerts = ranked.Alerts
}
