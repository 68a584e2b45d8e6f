package ports

import (
	"context"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/product"
)

// CatalogRepository defines the read contract for the product catalog.
// The catalog is reference data for pricing; orders never modify it.
type CatalogRepository interface {
	// GetProduct retrieves a catalog product by its unique identifier.
	// Returns ObjectNotFoundError when the product does not exist.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetIngredient retrieves an ingredient by its unique identifier.
	// Returns ObjectNotFoundError when the ingredient does not exist.
	GetIngredient(ctx context.Context, id kernel.UUID) (*product.Ingredient, error)

	// GetAllAvailableProducts retrieves every product currently offered for sale.
	GetAllAvailableProducts(ctx context.Context) ([]*product.Product, error)
}
