package queries

import (
	"context"

	"burgershop/internal/core/domain/model/product"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/core/ports"
)

// QuoteLineItemQueryHandler computes price quotes. Unlike the other query
// handlers it goes through the catalog repository and the domain pricer, so
// a quote can never drift from what order placement would charge.
type QuoteLineItemQueryHandler struct {
	catalogRepo ports.CatalogRepository
	pricer      services.LineItemPricer
}

// NewQuoteLineItemQueryHandler creates a handler for price quotes.
func NewQuoteLineItemQueryHandler(
	catalogRepo ports.CatalogRepository,
	pricer services.LineItemPricer,
) QuoteLineItemQueryHandler {
	return QuoteLineItemQueryHandler{
		catalogRepo: catalogRepo,
		pricer:      pricer,
	}
}

// Handle resolves the product and extra ingredients and prices the request.
// Returns ObjectNotFoundError for unknown products or ingredients and
// ValueIsInvalidError for unavailable products.
func (h QuoteLineItemQueryHandler) Handle(
	ctx context.Context,
	query QuoteLineItemQuery,
) (QuoteLineItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteLineItemQueryResponse{}, err
	}

	prod, err := h.catalogRepo.GetProduct(ctx, query.ProductID())
	if err != nil {
		return QuoteLineItemQueryResponse{}, err
	}

	customizations := query.Customizations()
	ingredients := make(map[string]*product.Ingredient)
	for _, c := range customizations {
		if !c.IsExtra() {
			continue
		}
		ingredient, ingErr := h.catalogRepo.GetIngredient(ctx, c.IngredientID())
		if ingErr != nil {
			return QuoteLineItemQueryResponse{}, ingErr
		}
		ingredients[ingredient.ID().String()] = ingredient
	}

	subtotal, err := h.pricer.Price(prod, customizations, ingredients)
	if err != nil {
		return QuoteLineItemQueryResponse{}, err
	}

	return QuoteLineItemQueryResponse{
		ProductID:   prod.ID(),
		ProductName: prod.Name(),
		BasePrice:   prod.BasePrice(),
		Subtotal:    subtotal,
	}, nil
}
