package entities

import "fmt"

// CurrencyMismatchError indicates arithmetic was attempted between two Money
// values with different currency codes. This is an integration error from the
// caller; the engine never converts currencies implicitly.
type CurrencyMismatchError struct {
	Left  CurrencyCode
	Right CurrencyCode
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}

// ProductNotFoundError indicates no unit configuration exists for a product
type ProductNotFoundError struct {
	ProductID ProductID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// UnitNotFoundError indicates a unit code is not registered on a product's
// unit configuration
type UnitNotFoundError struct {
	ProductID ProductID
	Unit      UnitCode
}

func (e *UnitNotFoundError) Error() string {
	return fmt.Sprintf("unit %s not registered for product %s", e.Unit, e.ProductID)
}

// InvalidWeightError indicates a negative scoring weight was supplied
type InvalidWeightError struct {
	Name  string
	Value string
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("scoring weight %s must be non-negative, got %s", e.Name, e.Value)
}

// VendorNotInComparisonError indicates an override targeted a vendor that is
// not part of the comparison's option set
type VendorNotInComparisonError struct {
	ComparisonID string
	VendorID     VendorID
}

func (e *VendorNotInComparisonError) Error() string {
	return fmt.Sprintf("vendor %s is not in comparison %s", e.VendorID, e.ComparisonID)
}
