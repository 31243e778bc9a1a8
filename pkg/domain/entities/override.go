package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VendorOverrideRecord is an append-only audit entry capturing a manual
// change of the selected vendor away from (or back to) the system
// recommendation. Created exactly once per override action; never mutated.
type VendorOverrideRecord struct {
	RecordID     string
	ComparisonID string
	ProductID    ProductID
	// Sequence is the 1-based position within the comparison's audit stream,
	// assigned by the audit log on append
	Sequence    int
	Actor       string
	FromVendor  VendorID
	ToVendor    VendorID
	Recommended VendorID
	Reason      string
	OccurredAt  time.Time
}

// NewVendorOverrideRecord creates a validated override record
func NewVendorOverrideRecord(
	comparisonID string,
	productID ProductID,
	actor string,
	fromVendor, toVendor, recommended VendorID,
	reason string,
) (*VendorOverrideRecord, error) {
	if comparisonID == "" {
		return nil, fmt.Errorf("comparison ID cannot be empty")
	}
	if actor == "" {
		return nil, fmt.Errorf("actor cannot be empty")
	}
	if toVendor == "" {
		return nil, fmt.Errorf("target vendor cannot be empty")
	}
	return &VendorOverrideRecord{
		RecordID:     uuid.New().String(),
		ComparisonID: comparisonID,
		ProductID:    productID,
		Actor:        actor,
		FromVendor:   fromVendor,
		ToVendor:     toVendor,
		Recommended:  recommended,
		Reason:       reason,
		OccurredAt:   time.Now(),
	}, nil
}
