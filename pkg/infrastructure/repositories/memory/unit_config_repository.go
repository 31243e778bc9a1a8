package memory

import (
	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
	"github.com/PeakMNA/carmen-sub008/pkg/domain/repositories"
)

// ProductConfigRepository provides in-memory product unit configuration
// storage
type ProductConfigRepository struct {
	configs map[entities.ProductID]*entities.ProductUnitConfiguration
}

// NewProductConfigRepository creates a new in-memory configuration repository
func NewProductConfigRepository() *ProductConfigRepository {
	return &ProductConfigRepository{
		configs: make(map[entities.ProductID]*entities.ProductUnitConfiguration),
	}
}

// Verify interface compliance
var _ repositories.ProductConfigRepository = (*ProductConfigRepository)(nil)

// LoadUnitConfigs loads configurations into the repository
func (r *ProductConfigRepository) LoadUnitConfigs(configs []*entities.ProductUnitConfiguration) error {
	for _, config := range configs {
		r.AddUnitConfig(config)
	}
	return nil
}

// AddUnitConfig adds a configuration to the repository
func (r *ProductConfigRepository) AddUnitConfig(config *entities.ProductUnitConfiguration) {
	r.configs[config.ProductID] = config
}

// GetUnitConfig returns the unit configuration for a product
func (r *ProductConfigRepository) GetUnitConfig(productID entities.ProductID) (*entities.ProductUnitConfiguration, error) {
	config, exists := r.configs[productID]
	if !exists {
		return nil, &entities.ProductNotFoundError{ProductID: productID}
	}
	return config, nil
}

// GetAllUnitConfigs returns all configurations
func (r *ProductConfigRepository) GetAllUnitConfigs() ([]*entities.ProductUnitConfiguration, error) {
	var configs []*entities.ProductUnitConfiguration
	for _, config := range r.configs {
		configs = append(configs, config)
	}
	return configs, nil
}
