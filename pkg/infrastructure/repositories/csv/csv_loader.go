package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// Loader handles loading pricing reference data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadUnitConfigs loads product unit configurations from a CSV file. Rows
// sharing a product_id form one configuration; exactly one row per product
// must be flagged as the base unit.
func (l *Loader) LoadUnitConfigs(filename string) ([]*entities.ProductUnitConfiguration, error) {
	records, err := readCSV(filename, []string{"product_id", "unit_code", "description", "factor", "is_base"})
	if err != nil {
		return nil, fmt.Errorf("unit config CSV: %w", err)
	}

	var productOrder []entities.ProductID
	unitsByProduct := make(map[entities.ProductID][]entities.ProductOrderUnit)

	for i, record := range records {
		productID := entities.ProductID(record[0])

		factor, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("unit config CSV row %d: invalid factor: %s", i+2, record[3])
		}

		isBase, err := strconv.ParseBool(record[4])
		if err != nil {
			return nil, fmt.Errorf("unit config CSV row %d: invalid is_base: %s", i+2, record[4])
		}

		unit, err := entities.NewProductOrderUnit(entities.UnitCode(record[1]), record[2], factor, isBase)
		if err != nil {
			return nil, fmt.Errorf("unit config CSV row %d: %w", i+2, err)
		}

		if _, seen := unitsByProduct[productID]; !seen {
			productOrder = append(productOrder, productID)
		}
		unitsByProduct[productID] = append(unitsByProduct[productID], *unit)
	}

	var configs []*entities.ProductUnitConfiguration
	for _, productID := range productOrder {
		config, err := entities.NewProductUnitConfiguration(productID, unitsByProduct[productID])
		if err != nil {
			return nil, fmt.Errorf("unit config CSV: %w", err)
		}
		configs = append(configs, config)
	}

	return configs, nil
}

// LoadPriceList loads vendor price list entries from a CSV file
func (l *Loader) LoadPriceList(filename string) ([]*entities.VendorPriceListEntry, error) {
	header := []string{
		"product_id", "vendor_id", "vendor_name", "unit_code",
		"price", "currency", "moq", "preferred_vendor", "preferred_item", "active",
	}
	records, err := readCSV(filename, header)
	if err != nil {
		return nil, fmt.Errorf("price list CSV: %w", err)
	}

	var entries []*entities.VendorPriceListEntry
	for i, record := range records {
		entry, err := parsePriceListEntry(record)
		if err != nil {
			return nil, fmt.Errorf("price list CSV row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// readCSV opens a file, validates its header, and returns the data rows
func readCSV(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parsePriceListEntry(record []string) (*entities.VendorPriceListEntry, error) {
	price, err := entities.NewMoneyFromString(record[4], entities.CurrencyCode(record[5]))
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}

	moq, err := decimal.NewFromString(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid moq: %s", record[6])
	}

	preferredVendor, err := strconv.ParseBool(record[7])
	if err != nil {
		return nil, fmt.Errorf("invalid preferred_vendor: %s", record[7])
	}

	preferredItem, err := strconv.ParseBool(record[8])
	if err != nil {
		return nil, fmt.Errorf("invalid preferred_item: %s", record[8])
	}

	active, err := strconv.ParseBool(record[9])
	if err != nil {
		return nil, fmt.Errorf("invalid active: %s", record[9])
	}

	return entities.NewVendorPriceListEntry(
		entities.ProductID(record[0]),
		entities.VendorID(record[1]),
		record[2],
		entities.UnitCode(record[3]),
		price,
		moq,
		preferredVendor,
		preferredItem,
		active,
	)
}
