package catalogrepo

import (
	"context"
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/product"
	"burgershop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// Read-only: the ordering flow never mutates the catalog.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GetIngredient retrieves an ingredient by ID.
func (r *GormCatalogRepository) GetIngredient(ctx context.Context, id kernel.UUID) (*product.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredientId", id.String())
		}
		return nil, err
	}

	return ingredientToDomain(dto)
}

// GetAllAvailableProducts retrieves every product offered for sale,
// sorted by category then name.
func (r *GormCatalogRepository) GetAllAvailableProducts(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("category, name").
		Find(&dtos, "available = ?", true).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
