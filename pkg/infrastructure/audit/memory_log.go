package audit

import (
	"sync"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/repositories"
)

// InMemoryAuditLog stores vendor override records grouped into per-comparison
// streams. Records are append-only: appended copies are never mutated, and
// reads return fresh slices so callers cannot reorder the log.
type InMemoryAuditLog struct {
	streams    map[string][]*entities.VendorOverrideRecord
	allRecords []*entities.VendorOverrideRecord
	mutex      sync.RWMutex
}

// NewInMemoryAuditLog creates a new in-memory audit log
func NewInMemoryAuditLog() *InMemoryAuditLog {
	return &InMemoryAuditLog{
		streams:    make(map[string][]*entities.VendorOverrideRecord),
		allRecords: make([]*entities.VendorOverrideRecord, 0),
	}
}

// Verify interface compliance
var _ repositories.OverrideAuditLog = (*InMemoryAuditLog)(nil)

// Append stores a copy of the record with its sequence number within the
// comparison's stream assigned, and returns the stored copy
func (l *InMemoryAuditLog) Append(record *entities.VendorOverrideRecord) (*entities.VendorOverrideRecord, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	stored := *record
	stored.Sequence = len(l.streams[record.ComparisonID]) + 1

	l.streams[record.ComparisonID] = append(l.streams[record.ComparisonID], &stored)
	l.allRecords = append(l.allRecords, &stored)
	return &stored, nil
}

// Records returns the audit stream for one comparison in append order
func (l *InMemoryAuditLog) Records(comparisonID string) ([]*entities.VendorOverrideRecord, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	stream := l.streams[comparisonID]
	records := make([]*entities.VendorOverrideRecord, len(stream))
	copy(records, stream)
	return records, nil
}

// AllRecords returns every record across comparisons in append order
func (l *InMemoryAuditLog) AllRecords() ([]*entities.VendorOverrideRecord, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	records := make([]*entities.VendorOverrideRecord, len(l.allRecords))
	copy(records, l.allRecords)
	return records, nil
}
