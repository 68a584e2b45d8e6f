package queries

import (
	"errors"

	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/guard"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery retrieves the menu: every product currently
// offered for sale.
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a menu query.
// This is a parameterless query over the product catalog.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// GetAvailableProductsQueryResponse is the read model of one menu entry.
type GetAvailableProductsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Category  string
	BasePrice kernel.Money
}
