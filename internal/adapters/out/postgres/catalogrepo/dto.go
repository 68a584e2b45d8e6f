// Package catalogrepo provides data transfer objects and mapping functions
// for the product catalog. The catalog is reference data: orders read
// products and ingredients here but never write them.
package catalogrepo

import (
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Category  string          `gorm:"index"`
	BasePrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Available bool            `gorm:"index"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// IngredientDTO represents the database structure for ingredients.
type IngredientDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Unit  string
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
	Stock int
}

// TableName specifies the database table name for ingredients.
func (IngredientDTO) TableName() string {
	return "ingredients"
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Category, basePrice, dto.Available)
}

func ingredientToDomain(dto IngredientDTO) (*product.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreIngredient(id, dto.Name, dto.Unit, price, dto.Stock)
}
