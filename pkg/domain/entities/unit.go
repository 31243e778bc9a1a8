package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID represents a unique product identifier
type ProductID string

// UnitCode represents a named purchasing or inventory unit (e.g. "CASE24")
type UnitCode string

// ProductOrderUnit is an alternate purchasing unit for a product with its
// multiplicative conversion factor to the base inventory unit.
// Factor is the number of base units contained in one order unit, so
// quantity_base = quantity * Factor and price_per_base = price / Factor.
// Immutable reference data, read-only to the engine.
type ProductOrderUnit struct {
	Code        UnitCode
	Description string
	Factor      decimal.Decimal
	IsBase      bool
}

// NewProductOrderUnit creates a validated ProductOrderUnit
func NewProductOrderUnit(code UnitCode, description string, factor decimal.Decimal, isBase bool) (*ProductOrderUnit, error) {
	if code == "" {
		return nil, fmt.Errorf("unit code cannot be empty")
	}
	if !factor.IsPositive() {
		return nil, fmt.Errorf("conversion factor must be positive, got %s", factor)
	}
	if isBase && !factor.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("base unit %s must have conversion factor 1, got %s", code, factor)
	}
	return &ProductOrderUnit{
		Code:        code,
		Description: description,
		Factor:      factor,
		IsBase:      isBase,
	}, nil
}

// ProductUnitConfiguration declares a product's base inventory unit and the
// set of purchasing units that convert to it
type ProductUnitConfiguration struct {
	ProductID ProductID
	BaseUnit  UnitCode
	units     map[UnitCode]ProductOrderUnit
}

// NewProductUnitConfiguration creates a validated configuration. Exactly one
// unit in the set must be marked base, with factor 1.
func NewProductUnitConfiguration(productID ProductID, units []ProductOrderUnit) (*ProductUnitConfiguration, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID cannot be empty")
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("unit configuration for %s must declare at least one unit", productID)
	}

	config := &ProductUnitConfiguration{
		ProductID: productID,
		units:     make(map[UnitCode]ProductOrderUnit, len(units)),
	}

	for _, unit := range units {
		if _, exists := config.units[unit.Code]; exists {
			return nil, fmt.Errorf("duplicate unit code %s for product %s", unit.Code, productID)
		}
		if !unit.Factor.IsPositive() {
			return nil, fmt.Errorf("conversion factor for unit %s must be positive, got %s", unit.Code, unit.Factor)
		}
		if unit.IsBase {
			if config.BaseUnit != "" {
				return nil, fmt.Errorf("product %s declares more than one base unit: %s and %s",
					productID, config.BaseUnit, unit.Code)
			}
			if !unit.Factor.Equal(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("base unit %s must have conversion factor 1, got %s", unit.Code, unit.Factor)
			}
			config.BaseUnit = unit.Code
		}
		config.units[unit.Code] = unit
	}

	if config.BaseUnit == "" {
		return nil, fmt.Errorf("product %s declares no base unit", productID)
	}

	return config, nil
}

// Unit returns the declared unit for a code, or UnitNotFoundError if the code
// is not registered on this configuration
func (c *ProductUnitConfiguration) Unit(code UnitCode) (ProductOrderUnit, error) {
	unit, exists := c.units[code]
	if !exists {
		return ProductOrderUnit{}, &UnitNotFoundError{ProductID: c.ProductID, Unit: code}
	}
	return unit, nil
}

// Units returns all declared units
func (c *ProductUnitConfiguration) Units() []ProductOrderUnit {
	units := make([]ProductOrderUnit, 0, len(c.units))
	for _, unit := range c.units {
		units = append(units, unit)
	}
	return units
}
