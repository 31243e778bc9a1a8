package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// RenderText renders a price comparison as a human-readable report
func RenderText(comparison *entities.PRItemPriceComparison) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════\n")
	b.WriteString("                 PR AUTO-PRICING COMPARISON\n")
	b.WriteString("═══════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "📦 Product: %s\n", comparison.ProductID)
	fmt.Fprintf(&b, "   Requested: %s %s (%s base units)\n",
		comparison.RequestedQty, comparison.RequestedUnit, comparison.RequestedQtyBase)
	fmt.Fprintf(&b, "   Selection: %s\n\n", comparison.Selection)

	if comparison.NoVendorsAvailable {
		b.WriteString("⚠️  No active vendor price list entries for this product.\n")
		return b.String()
	}

	b.WriteString("🏷️  VENDOR RANKING\n")
	b.WriteString("────────────────────────────────────────────────────────────────\n")
	for i, vendor := range comparison.Vendors {
		marker := "  "
		if vendor.VendorID() == comparison.RecommendedVendor {
			marker = "★ "
		}
		if vendor.Eligible {
			fmt.Fprintf(&b, "%s%d. %-12s %-20s %s/base  score %s\n",
				marker, i+1,
				vendor.VendorID(),
				vendor.Option.Entry.VendorName,
				vendor.Option.PricePerBaseUnit.RoundDisplay().Amount,
				vendor.Score.Round(4))
		} else {
			fmt.Fprintf(&b, "%s%d. %-12s %-20s %s/base  excluded: %s\n",
				marker, i+1,
				vendor.VendorID(),
				vendor.Option.Entry.VendorName,
				vendor.Option.PricePerBaseUnit.RoundDisplay().Amount,
				vendor.IneligibleReason)
		}
	}
	b.WriteString("\n")

	if comparison.RecommendedVendor != "" {
		fmt.Fprintf(&b, "✅ Recommended: %s\n", comparison.RecommendedVendor)
	} else {
		b.WriteString("⚠️  No recommendation: no vendor satisfies its MOQ at this quantity.\n")
	}
	if comparison.SelectedVendor != "" && comparison.SelectedVendor != comparison.RecommendedVendor {
		fmt.Fprintf(&b, "✏️  Selected (override): %s\n", comparison.SelectedVendor)
	}

	if len(comparison.Alerts) > 0 {
		b.WriteString("\n🔔 MOQ ALERTS\n")
		b.WriteString("────────────────────────────────────────────────────────────────\n")
		for _, alert := range comparison.Alerts {
			fmt.Fprintf(&b, "Vendor %-12s MOQ %s base units, requested %s (short %s)\n",
				alert.VendorID, alert.MOQBase, alert.RequestedBase, alert.ShortfallBase)
		}
	}

	return b.String()
}

// RenderJSON renders a price comparison as indented JSON
func RenderJSON(comparison *entities.PRItemPriceComparison) (string, error) {
	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return string(data), nil
}

// RenderAuditTrail renders override records as a human-readable list
func RenderAuditTrail(records []*entities.VendorOverrideRecord) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n📋 OVERRIDE AUDIT TRAIL\n")
	b.WriteString("────────────────────────────────────────────────────────────────\n")
	for _, record := range records {
		fmt.Fprintf(&b, "#%d %s  %s -> %s  by %s",
			record.Sequence,
			record.OccurredAt.Format("2006-01-02 15:04:05"),
			record.FromVendor, record.ToVendor, record.Actor)
		if record.Reason != "" {
			fmt.Fprintf(&b, "  (%s)", record.Reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}
