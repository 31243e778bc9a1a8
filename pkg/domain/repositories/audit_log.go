package repositories

import "github.com/PeakMNA/carmen-sub008/pkg/domain/entities"

// OverrideAuditLog persists vendor override records. Records are append-only:
// implementations must never mutate or delete a previously appended record.
type OverrideAuditLog interface {
	// Append stores a record and returns the stored copy with its sequence
	// number within the comparison's stream assigned
	Append(record *entities.VendorOverrideRecord) (*entities.VendorOverrideRecord, error)
	// Records returns the audit stream for one comparison in append order
	Records(comparisonID string) ([]*entities.VendorOverrideRecord, error)
	// AllRecords returns every record across comparisons in append order
	AllRecords() ([]*entities.VendorOverrideRecord, error)
}
