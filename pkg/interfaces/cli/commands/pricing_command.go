package commands

import (
	"fmt"

	"github.com/shopspring/decimal"

	appservices "github.com/PeakMNA/carmen-sub008/pkg/application/services"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/infrastructure/audit"
	"github.com/PeakMNA/carmen-sub008/pkg/infrastructure/repositories/csv"
	"github.com/PeakMNA/carmen-sub008/pkg/infrastructure/repositories/memory"
	"github.com/PeakMNA/carmen-sub008/pkg/interfaces/cli/output"
)

// Config holds configuration for the pricing command
type Config struct {
	UnitsFile      string
	PricesFile     string
	Product        string
	Quantity       string
	Unit           string
	OverrideVendor string
	OverrideReason string
	Actor          string
	Format         string
	Help           bool
}

// PricingCommand handles the auto-pricing execution logic
type PricingCommand struct {
	config Config
}

// NewPricingCommand creates a new pricing command with the given configuration
func NewPricingCommand(config Config) *PricingCommand {
	return &PricingCommand{
		config: config,
	}
}

// Execute runs the pricing command
func (c *PricingCommand) Execute() error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	quantity, err := decimal.NewFromString(c.config.Quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", c.config.Quantity, err)
	}

	// Load reference data from CSV files
	loader := csv.NewLoader()

	configs, err := loader.LoadUnitConfigs(c.config.UnitsFile)
	if err != nil {
		return fmt.Errorf("failed to load unit configurations: %w", err)
	}

	entries, err := loader.LoadPriceList(c.config.PricesFile)
	if err != nil {
		return fmt.Errorf("failed to load price list: %w", err)
	}

	configRepo := memory.NewProductConfigRepository()
	if err := configRepo.LoadUnitConfigs(configs); err != nil {
		return fmt.Errorf("failed to load unit configurations: %w", err)
	}

	priceRepo := memory.NewPriceListRepository()
	if err := priceRepo.LoadEntries(entries); err != nil {
		return fmt.Errorf("failed to load price list entries: %w", err)
	}

	auditLog := audit.NewInMemoryAuditLog()
	service := appservices.NewPricingService(configRepo, priceRepo, auditLog)

	comparison, err := service.FetchPricing(
		entities.ProductID(c.config.Product),
		quantity,
		entities.UnitCode(c.config.Unit),
	)
	if err != nil {
		return fmt.Errorf("pricing failed: %w", err)
	}

	if c.config.OverrideVendor != "" {
		comparison, _, err = service.ApplyOverride(
			comparison,
			entities.VendorID(c.config.OverrideVendor),
			c.config.Actor,
			c.config.OverrideReason,
		)
		if err != nil {
			return fmt.Errorf("override failed: %w", err)
		}
	}

	return c.render(comparison, auditLog)
}

func (c *PricingCommand) render(comparison *entities.PRItemPriceComparison, auditLog *audit.InMemoryAuditLog) error {
	switch c.config.Format {
	case "text":
		fmt.Print(output.RenderText(comparison))
		records, err := auditLog.Records(comparison.ComparisonID)
		if err != nil {
			return err
		}
		fmt.Print(output.RenderAuditTrail(records))
		return nil
	case "json":
		rendered, err := output.RenderJSON(comparison)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
}

func (c *PricingCommand) validateInputs() error {
	if c.config.UnitsFile == "" {
		return fmt.Errorf("units CSV file is required")
	}
	if c.config.PricesFile == "" {
		return fmt.Errorf("prices CSV file is required")
	}
	if c.config.Product == "" {
		return fmt.Errorf("product ID is required")
	}
	if c.config.Quantity == "" {
		return fmt.Errorf("quantity is required")
	}
	if c.config.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	if c.config.OverrideVendor != "" && c.config.Actor == "" {
		return fmt.Errorf("actor is required when applying an override")
	}
	return nil
}

func (c *PricingCommand) showHelp() {
	fmt.Println("PR Auto-Pricing Engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pricing -units <units.csv> -prices <prices.csv> -product <id> -qty <n> -unit <code> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -units     Path to product unit configuration CSV")
	fmt.Println("  -prices    Path to vendor price list CSV")
	fmt.Println("  -product   Product ID to price")
	fmt.Println("  -qty       Requested quantity (decimal, in -unit units)")
	fmt.Println("  -unit      Unit code the quantity is expressed in")
	fmt.Println("  -override  Vendor ID to select instead of the recommendation")
	fmt.Println("  -reason    Optional reason for the override")
	fmt.Println("  -actor     User applying the override")
	fmt.Println("  -format    Output format: text, json (default text)")
}
