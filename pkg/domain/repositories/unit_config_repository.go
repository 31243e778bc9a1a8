package repositories

import "github.com/PeakMNA/carmen-sub008/pkg/domain/entities"

// ProductConfigRepository provides access to product unit configurations
type ProductConfigRepository interface {
	GetUnitConfig(productID entities.ProductID) (*entities.ProductUnitConfiguration, error)
	GetAllUnitConfigs() ([]*entities.ProductUnitConfiguration, error)
	LoadUnitConfigs(configs []*entities.ProductUnitConfiguration) error
}
