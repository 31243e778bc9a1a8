package memory

import (
	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/repositories"
)

// PriceListRepository provides in-memory vendor price list storage
type PriceListRepository struct {
	entries map[entities.ProductID][]*entities.VendorPriceListEntry
}

// NewPriceListRepository creates a new in-memory price list repository
func NewPriceListRepository() *PriceListRepository {
	return &PriceListRepository{
		entries: make(map[entities.ProductID][]*entities.VendorPriceListEntry),
	}
}

// Verify interface compliance
var _ repositories.PriceListRepository = (*PriceListRepository)(nil)

// LoadEntries loads price list entries into the repository
func (r *PriceListRepository) LoadEntries(entries []*entities.VendorPriceListEntry) error {
	for _, entry := range entries {
		r.AddEntry(entry)
	}
	return nil
}

// AddEntry adds a price list entry to the repository
func (r *PriceListRepository) AddEntry(entry *entities.VendorPriceListEntry) {
	r.entries[entry.ProductID] = append(r.entries[entry.ProductID], entry)
}

// GetActiveEntries returns the active price list entries for a product,
// possibly empty. Inactive entries are filtered out.
func (r *PriceListRepository) GetActiveEntries(productID entities.ProductID) ([]*entities.VendorPriceListEntry, error) {
	var active []*entities.VendorPriceListEntry
	for _, entry := range r.entries[productID] {
		if entry.Active {
			active = append(active, entry)
		}
	}
	return active, nil
}
