package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VendorID represents a unique vendor identifier
type VendorID string

// VendorPriceListEntry is a vendor's quote for one product in the vendor's
// own unit. Supplied by the price-list collaborator; read-only to the engine.
type VendorPriceListEntry struct {
	ProductID       ProductID
	VendorID        VendorID
	VendorName      string
	Unit            UnitCode
	Price           Money
	MOQ             decimal.Decimal
	PreferredVendor bool
	PreferredItem   bool
	Active          bool
}

// NewVendorPriceListEntry creates a validated price list entry
func NewVendorPriceListEntry(
	productID ProductID,
	vendorID VendorID,
	vendorName string,
	unit UnitCode,
	price Money,
	moq decimal.Decimal,
	preferredVendor, preferredItem, active bool,
) (*VendorPriceListEntry, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID cannot be empty")
	}
	if vendorID == "" {
		return nil, fmt.Errorf("vendor ID cannot be empty")
	}
	if unit == "" {
		return nil, fmt.Errorf("unit code cannot be empty")
	}
	if !price.Amount.IsPositive() {
		return nil, fmt.Errorf("quoted price must be positive, got %s", price.Amount)
	}
	if price.Currency == "" {
		return nil, fmt.Errorf("quoted price must carry a currency code")
	}
	if moq.IsNegative() {
		return nil, fmt.Errorf("MOQ cannot be negative, got %s", moq)
	}
	return &VendorPriceListEntry{
		ProductID:       productID,
		VendorID:        vendorID,
		VendorName:      vendorName,
		Unit:            unit,
		Price:           price,
		MOQ:             moq,
		PreferredVendor: preferredVendor,
		PreferredItem:   preferredItem,
		Active:          active,
	}, nil
}
