package repositories

import "github.com/PeakMNA/carmen-sub008/pkg/domain/entities"

// PriceListRepository provides access to vendor price list data
type PriceListRepository interface {
	// GetActiveEntries returns the active price list entries for a product,
	// possibly empty
	GetActiveEntries(productID entities.ProductID) ([]*entities.VendorPriceListEntry, error)
	LoadEntries(entries []*entities.VendorPriceListEntry) error
}
