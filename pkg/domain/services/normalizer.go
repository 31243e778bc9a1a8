package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// Normalizer converts vendor-quoted quantities, prices and MOQs into a
// product's base inventory unit so quotes become directly comparable.
// Stateless; all methods are pure functions of their inputs.
//
// Convention: a unit's conversion factor is the number of base units
// contained in one order unit. Therefore quantity_base = quantity * factor
// and price_per_base = price / factor. Factors are validated positive at
// configuration time, so normalization never divides by zero.
type Normalizer struct{}

// NewNormalizer creates a new unit conversion normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// ConvertQuantity converts a quantity expressed in fromUnit into base units
func (n *Normalizer) ConvertQuantity(
	config *entities.ProductUnitConfiguration,
	quantity decimal.Decimal,
	fromUnit entities.UnitCode,
) (decimal.Decimal, error) {
	unit, err := config.Unit(fromUnit)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return quantity.Mul(unit.Factor), nil
}

// DenormalizeQuantity converts a base-unit quantity back into toUnit.
// Inverse of ConvertQuantity.
func (n *Normalizer) DenormalizeQuantity(
	config *entities.ProductUnitConfiguration,
	quantityBase decimal.Decimal,
	toUnit entities.UnitCode,
) (decimal.Decimal, error) {
	unit, err := config.Unit(toUnit)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return quantityBase.Div(unit.Factor), nil
}

// NormalizePrice converts a price quoted per fromUnit into a price per base
// unit. The currency code is preserved unmodified; only the magnitude is
// rescaled.
func (n *Normalizer) NormalizePrice(
	config *entities.ProductUnitConfiguration,
	price entities.Money,
	fromUnit entities.UnitCode,
) (entities.Money, error) {
	unit, err := config.Unit(fromUnit)
	if err != nil {
		return entities.Money{}, err
	}
	return price.DivFactor(unit.Factor), nil
}

// NormalizeMOQ converts a minimum order quantity expressed in fromUnit into
// base units. Same transform as quantity conversion.
func (n *Normalizer) NormalizeMOQ(
	config *entities.ProductUnitConfiguration,
	moq decimal.Decimal,
	fromUnit entities.UnitCode,
) (decimal.Decimal, error) {
	return n.ConvertQuantity(config, moq, fromUnit)
}

// MeetsMOQ reports whether a requested base-unit quantity satisfies a
// base-unit MOQ. Exactly-equal quantities satisfy the MOQ.
func (n *Normalizer) MeetsMOQ(requestedQtyBase, moqBase decimal.Decimal) bool {
	return requestedQtyBase.Cmp(moqBase) >= 0
}

// NormalizeEntry enriches a price list entry with its base-unit price, its
// base-unit MOQ, and whether the requested base quantity satisfies the MOQ
func (n *Normalizer) NormalizeEntry(
	config *entities.ProductUnitConfiguration,
	entry *entities.VendorPriceListEntry,
	requestedQtyBase decimal.Decimal,
) (entities.NormalizedVendorOption, error) {
	pricePerBase, err := n.NormalizePrice(config, entry.Price, entry.Unit)
	if err != nil {
		return entities.NormalizedVendorOption{}, fmt.Errorf(
			"failed to normalize price for vendor %s: %w", entry.VendorID, err)
	}

	moqBase, err := n.NormalizeMOQ(config, entry.MOQ, entry.Unit)
	if err != nil {
		return entities.NormalizedVendorOption{}, fmt.Errorf(
			"failed to normalize MOQ for vendor %s: %w", entry.VendorID, err)
	}

	return entities.NormalizedVendorOption{
		Entry:            *entry,
		PricePerBaseUnit: pricePerBase,
		MOQBase:          moqBase,
		MeetsMOQ:         n.MeetsMOQ(requestedQtyBase, moqBase),
	}, nil
}
