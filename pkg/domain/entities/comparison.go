package entities

import (
	"github.com/shopspring/decimal"
)

// NormalizedVendorOption is a price list entry rescaled into the product's
// base inventory unit so vendor quotes become directly comparable.
// Derived data, recomputed whenever quantity or price list data changes.
type NormalizedVendorOption struct {
	Entry            VendorPriceListEntry
	PricePerBaseUnit Money
	MOQBase          decimal.Decimal
	MeetsMOQ         bool
}

// MOQAlert warns that a vendor's minimum order quantity is not satisfied at
// the requested quantity. Produced alongside the comparison, never stored.
type MOQAlert struct {
	VendorID      VendorID
	VendorName    string
	QuotedUnit    UnitCode
	MOQBase       decimal.Decimal
	RequestedBase decimal.Decimal
	ShortfallBase decimal.Decimal
}

// VendorScoreBreakdown decomposes a vendor's weighted score into its
// contributing factors, kept for explainability and audit
type VendorScoreBreakdown struct {
	// PriceScore is the inverse-normalized price: cheapest eligible price
	// divided by this vendor's price, so the cheapest vendor scores 1.
	PriceScore decimal.Decimal
	// PriceComponent is PriceScore scaled by the price weight
	PriceComponent decimal.Decimal
	// PreferredComponent is the preferred-vendor bonus (weight or zero)
	PreferredComponent decimal.Decimal
	Total              decimal.Decimal
}

// RankedVendor pairs a normalized option with its score and ranking outcome.
// Ineligible vendors (MOQ failure, preferred-item lock) keep a zero score and
// carry the reason they were excluded from ranking.
type RankedVendor struct {
	Option           NormalizedVendorOption
	Score            decimal.Decimal
	Breakdown        VendorScoreBreakdown
	Eligible         bool
	IneligibleReason string
}

// VendorID returns the vendor identity for this ranked entry
func (r RankedVendor) VendorID() VendorID {
	return r.Option.Entry.VendorID
}

// SelectionState tracks how the comparison's selected vendor was chosen
type SelectionState int

const (
	Unselected SelectionState = iota
	Recommended
	Overridden
)

// String method for SelectionState enum
func (s SelectionState) String() string {
	switch s {
	case Unselected:
		return "Unselected"
	case Recommended:
		return "Recommended"
	case Overridden:
		return "Overridden"
	default:
		return "Unknown"
	}
}

// PRItemPriceComparison is the aggregate pricing result for one purchase
// request line item: the full normalized option set in ranked order, the
// system recommendation, MOQ alerts, and the currently selected vendor.
// RecommendedVendor and SelectedVendor are tracked independently so an
// override never rewrites the recommendation.
type PRItemPriceComparison struct {
	ComparisonID string
	ProductID    ProductID

	RequestedQty        decimal.Decimal
	RequestedUnit       UnitCode
	RequestedUnitFactor decimal.Decimal
	RequestedQtyBase    decimal.Decimal

	Vendors            []RankedVendor
	RecommendedVendor  VendorID
	SelectedVendor     VendorID
	Selection          SelectionState
	Alerts             []MOQAlert
	NoVendorsAvailable bool
}

// HasVendor reports whether a vendor is part of the comparison's option set
func (c *PRItemPriceComparison) HasVendor(vendorID VendorID) bool {
	for _, vendor := range c.Vendors {
		if vendor.VendorID() == vendorID {
			return true
		}
	}
	return false
}

// Vendor returns the ranked entry for a vendor, or VendorNotInComparisonError
func (c *PRItemPriceComparison) Vendor(vendorID VendorID) (RankedVendor, error) {
	for _, vendor := range c.Vendors {
		if vendor.VendorID() == vendorID {
			return vendor, nil
		}
	}
	return RankedVendor{}, &VendorNotInComparisonError{ComparisonID: c.ComparisonID, VendorID: vendorID}
}

// Clone returns an independent copy of the comparison. Results are treated as
// immutable; operations that change selection or quantity work on a clone and
// return it rather than mutating the caller's value.
func (c *PRItemPriceComparison) Clone() *PRItemPriceComparison {
	clone := *c
	clone.Vendors = make([]RankedVendor, len(c.Vendors))
	copy(clone.Vendors, c.Vendors)
	clone.Alerts = make([]MOQAlert, len(c.Alerts))
	copy(clone.Alerts, c.Alerts)
	return &clone
}
